package preference

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
)

type stubRepo struct {
	inserted   []domain.PreferenceSubmission
	subs       []domain.PreferenceSubmission
	pinned     []domain.ManualAssignment
	unpinOK    bool
	autoAssign bool
	setCalls   []bool
}

func (s *stubRepo) InsertSubmission(_ context.Context, sub *domain.PreferenceSubmission) (int64, error) {
	s.inserted = append(s.inserted, *sub)
	return int64(len(s.inserted)), nil
}

func (s *stubRepo) ListSubmissions(_ context.Context, _ domain.Scope) ([]domain.PreferenceSubmission, error) {
	return s.subs, nil
}

func (s *stubRepo) PinManual(_ context.Context, m *domain.ManualAssignment) (int64, error) {
	s.pinned = append(s.pinned, *m)
	return int64(len(s.pinned)), nil
}

func (s *stubRepo) UnpinManual(_ context.Context, _ domain.Scope, _ int64) (bool, error) {
	return s.unpinOK, nil
}

func (s *stubRepo) ListManual(_ context.Context, _ domain.Scope) ([]domain.ManualAssignment, error) {
	return s.pinned, nil
}

func (s *stubRepo) GetAutoAssign(_ context.Context, _ domain.Scope) (bool, error) {
	return s.autoAssign, nil
}

func (s *stubRepo) SetAutoAssign(_ context.Context, _ domain.Scope, enabled bool) error {
	s.setCalls = append(s.setCalls, enabled)
	return nil
}

type stubDrivers struct{ byID map[int64]domain.Driver }

func (s *stubDrivers) Get(_ context.Context, _ domain.Scope, id int64) (*domain.Driver, error) {
	if d, ok := s.byID[id]; ok {
		return &d, nil
	}
	return nil, nil
}

type stubJobs struct{ jobs []domain.Job }

func (s *stubJobs) Get(_ context.Context, _ domain.Scope, id int64) (*domain.Job, error) {
	for _, j := range s.jobs {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, nil
}

func (s *stubJobs) List(_ context.Context, _ domain.Scope) ([]domain.Job, error) {
	return s.jobs, nil
}

type stubTenants struct {
	active bool
	err    error
}

func (s *stubTenants) SiteActive(_ context.Context, _ domain.Scope) (bool, error) {
	return s.active, s.err
}

func newTestService(repo *stubRepo, drivers *stubDrivers, jobs *stubJobs, tenants tenantChecker) *Service {
	svc := NewService(repo, drivers, jobs, tenants, logx.Nop(), time.Second)
	svc.now = func() time.Time { return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC) }
	return svc
}

func eligibleDriver(id int64) domain.Driver {
	return domain.Driver{ID: id, EmployeeID: "0000001", Name: "a", Eligible: true, CompanyID: 1, SiteID: 1}
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	jobs := &stubJobs{jobs: []domain.Job{{ID: 10, CompanyID: 1, SiteID: 1}, {ID: 11, CompanyID: 1, SiteID: 1}}}
	drivers := &stubDrivers{byID: map[int64]domain.Driver{7: eligibleDriver(7)}}

	t.Run("ok stamps submission time", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{}
		svc := newTestService(repo, drivers, jobs, nil)

		id, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{
			DriverID: 7, JobIDs: []int64{11, 10}, CompanyID: 1, SiteID: 1,
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
		require.Len(t, repo.inserted, 1)
		require.Equal(t, []int64{11, 10}, repo.inserted[0].JobIDs)
		require.False(t, repo.inserted[0].SubmittedAt.IsZero())
	})

	t.Run("empty list allowed", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{}
		svc := newTestService(repo, drivers, jobs, nil)

		_, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{
			DriverID: 7, CompanyID: 1, SiteID: 1,
		})
		require.NoError(t, err)
		require.Len(t, repo.inserted, 1)
	})

	t.Run("duplicate job ids rejected", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{
			DriverID: 7, JobIDs: []int64{10, 10}, CompanyID: 1, SiteID: 1,
		})
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("missing scope rejected", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{DriverID: 7, SiteID: 1})
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{
			DriverID: 99, JobIDs: []int64{10}, CompanyID: 1, SiteID: 1,
		})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("job outside scope", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{
			DriverID: 7, JobIDs: []int64{42}, CompanyID: 1, SiteID: 1,
		})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("inactive site", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, &stubTenants{active: false})
		_, err := svc.Submit(context.Background(), &domain.PreferenceSubmission{
			DriverID: 7, JobIDs: []int64{10}, CompanyID: 1, SiteID: 1,
		})
		require.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestService_Latest_CleansAndDedups(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	repo := &stubRepo{subs: []domain.PreferenceSubmission{
		sub(1, 7, base, 10),
		sub(2, 7, base.Add(time.Hour), 99, 11),
	}}
	jobs := &stubJobs{jobs: []domain.Job{{ID: 10, CompanyID: 1, SiteID: 1}, {ID: 11, CompanyID: 1, SiteID: 1}}}
	svc := newTestService(repo, &stubDrivers{}, jobs, nil)

	got, err := svc.Latest(context.Background(), domain.Scope{CompanyID: 1, SiteID: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(7), got[0].DriverID)
	require.Equal(t, []int64{11}, got[0].JobIDs)
}

func TestService_Pin(t *testing.T) {
	t.Parallel()

	certified := eligibleDriver(7)
	certified.AirportCertified = true
	uncertified := eligibleDriver(8)
	ineligible := eligibleDriver(9)
	ineligible.Eligible = false

	drivers := &stubDrivers{byID: map[int64]domain.Driver{7: certified, 8: uncertified, 9: ineligible}}
	jobs := &stubJobs{jobs: []domain.Job{
		{ID: 10, CompanyID: 1, SiteID: 1},
		{ID: 20, Airport: true, CompanyID: 1, SiteID: 1},
	}}

	pin := func(driverID, jobID int64) *domain.ManualAssignment {
		return &domain.ManualAssignment{DriverID: driverID, JobID: jobID, CompanyID: 1, SiteID: 1}
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{}
		svc := newTestService(repo, drivers, jobs, nil)
		_, err := svc.Pin(context.Background(), pin(7, 20))
		require.NoError(t, err)
		require.Len(t, repo.pinned, 1)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Pin(context.Background(), pin(99, 10))
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("unknown job", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Pin(context.Background(), pin(7, 42))
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("ineligible driver", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Pin(context.Background(), pin(9, 10))
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("airport job needs certification", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{}, drivers, jobs, nil)
		_, err := svc.Pin(context.Background(), pin(8, 20))
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})
}

func TestService_Unpin(t *testing.T) {
	t.Parallel()

	scope := domain.Scope{CompanyID: 1, SiteID: 1}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{unpinOK: true}, &stubDrivers{}, &stubJobs{}, nil)
		require.NoError(t, svc.Unpin(context.Background(), scope, 10))
	})

	t.Run("missing pin", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(&stubRepo{unpinOK: false}, &stubDrivers{}, &stubJobs{}, nil)
		require.ErrorIs(t, svc.Unpin(context.Background(), scope, 10), apperr.ErrNotFound)
	})
}

func TestService_AutoAssignToggle(t *testing.T) {
	t.Parallel()

	scope := domain.Scope{CompanyID: 1, SiteID: 1}
	repo := &stubRepo{autoAssign: true}
	svc := newTestService(repo, &stubDrivers{}, &stubJobs{}, nil)

	enabled, err := svc.AutoAssign(context.Background(), scope)
	require.NoError(t, err)
	require.True(t, enabled)

	require.NoError(t, svc.SetAutoAssign(context.Background(), scope, false))
	require.Equal(t, []bool{false}, repo.setCalls)

	_, err = svc.AutoAssign(context.Background(), domain.Scope{})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}
