package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
)

type stubSnapshotSource struct {
	snap  *domain.Snapshot
	err   error
	calls int
}

func (s *stubSnapshotSource) Load(_ context.Context, _ domain.Scope) (*domain.Snapshot, error) {
	s.calls++
	return s.snap, s.err
}

type stubCounter struct{ n int }

func (c *stubCounter) Inc() { c.n++ }

func TestService_ResolveSite_InvalidScope(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubSnapshotSource{}, logx.Nop(), time.Second, 4, nil, nil)

	_, err := svc.ResolveSite(context.Background(), domain.Scope{CompanyID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_ResolveSite_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc := NewService(&stubSnapshotSource{err: boom}, logx.Nop(), time.Second, 4, nil, nil)

	_, err := svc.ResolveSite(context.Background(), domain.Scope{CompanyID: 1, SiteID: 2})
	require.ErrorIs(t, err, boom)
}

func TestService_ResolveSite_MemoizesOnFingerprint(t *testing.T) {
	t.Parallel()

	src := &stubSnapshotSource{snap: testSnapshot()}
	resolutions := &stubCounter{}
	memoHits := &stubCounter{}
	svc := NewService(src, logx.Nop(), time.Second, 4, resolutions, memoHits)

	scope := domain.Scope{CompanyID: 1, SiteID: 2}

	first, err := svc.ResolveSite(context.Background(), scope)
	require.NoError(t, err)
	require.Equal(t, 1, resolutions.n)
	require.Equal(t, 0, memoHits.n)

	// unchanged snapshot content: served from memo, still loaded fresh
	second, err := svc.ResolveSite(context.Background(), scope)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, resolutions.n)
	require.Equal(t, 1, memoHits.n)
	require.Equal(t, 2, src.calls)

	// any write shows up in the snapshot and busts the key
	src.snap = testSnapshot()
	src.snap.AutoAssign = false
	third, err := svc.ResolveSite(context.Background(), scope)
	require.NoError(t, err)
	require.NotEqual(t, first.AutoAssign, third.AutoAssign)
	require.Equal(t, 2, resolutions.n)
}

func TestService_ResolveSite_UsesLatestCleanedPreferences(t *testing.T) {
	t.Parallel()

	early := time.Date(2026, 8, 19, 8, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	snap := &domain.Snapshot{
		Scope:   domain.Scope{CompanyID: 1, SiteID: 2},
		Drivers: []domain.Driver{testDriver(1, "0000001", 1)},
		Jobs:    []domain.Job{testJob(10, false), testJob(11, false)},
		Submissions: []domain.PreferenceSubmission{
			// superseded list pointed at job 10
			{ID: 1, DriverID: 1, JobIDs: []int64{10}, SubmittedAt: early, CompanyID: 1, SiteID: 2},
			// latest list: a deleted job first, then job 11
			{ID: 2, DriverID: 1, JobIDs: []int64{99, 11}, SubmittedAt: late, CompanyID: 1, SiteID: 2},
		},
		AutoAssign: false,
	}
	svc := NewService(&stubSnapshotSource{snap: snap}, logx.Nop(), time.Second, 4, nil, nil)

	res, err := svc.ResolveSite(context.Background(), snap.Scope)
	require.NoError(t, err)

	require.Equal(t, []domain.Assignment{{DriverID: 1, JobID: 11, Type: domain.AssignPreference}}, res.Assignments)
	require.Equal(t, map[int64][]int64{1: {11}}, res.Preferences)
}
