package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/http/handlers"
	"rosterbid/internal/service/resolver"
)

type stubResolverUsecase struct {
	resolveFn func(ctx context.Context, scope domain.Scope) (resolver.Resolution, error)
}

func (s *stubResolverUsecase) ResolveSite(ctx context.Context, scope domain.Scope) (resolver.Resolution, error) {
	return s.resolveFn(ctx, scope)
}

func TestAssignmentHandler_Resolve_OK(t *testing.T) {
	t.Parallel()

	res := resolver.Resolution{
		Scope:      domain.Scope{CompanyID: 1, SiteID: 2},
		AutoAssign: true,
		Assignments: []domain.Assignment{
			{DriverID: 1, JobID: 10, Type: domain.AssignPreference},
			{DriverID: 2, JobID: 11, Type: domain.AssignSeniority},
		},
		UnassignedDrivers: []int64{3},
		Preferences:       map[int64][]int64{1: {10, 11}},
	}

	h := handlers.NewAssignmentHandler(&stubResolverUsecase{
		resolveFn: func(_ context.Context, scope domain.Scope) (resolver.Resolution, error) {
			require.Equal(t, res.Scope, scope)
			return res, nil
		},
	})

	body := `{"company_id":1,"site_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/assignments/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Resolve(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		AutoAssign  bool `json:"auto_assign"`
		Assignments []struct {
			DriverID       int64  `json:"driver_id"`
			JobID          int64  `json:"job_id"`
			AssignmentType string `json:"assignment_type"`
			Outcome        string `json:"outcome"`
			PreferenceRank int    `json:"preference_rank"`
		} `json:"assignments"`
		UnassignedDrivers []int64 `json:"unassigned_drivers"`
		OpenJobs          []int64 `json:"open_jobs"`
		Summary           struct {
			Total       int            `json:"total"`
			FirstChoice int            `json:"first_choice"`
			Auto        int            `json:"auto"`
			ByType      map[string]int `json:"by_type"`
		} `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	require.True(t, resp.AutoAssign)
	require.Len(t, resp.Assignments, 2)
	require.Equal(t, "preference", resp.Assignments[0].AssignmentType)
	require.Equal(t, "first-choice", resp.Assignments[0].Outcome)
	require.Equal(t, 1, resp.Assignments[0].PreferenceRank)
	require.Equal(t, "auto", resp.Assignments[1].Outcome)
	require.Equal(t, []int64{3}, resp.UnassignedDrivers)
	require.Equal(t, []int64{}, resp.OpenJobs)
	require.Equal(t, 2, resp.Summary.Total)
	require.Equal(t, 1, resp.Summary.FirstChoice)
	require.Equal(t, 1, resp.Summary.Auto)
	require.Equal(t, 1, resp.Summary.ByType["seniority"])
}

func TestAssignmentHandler_Resolve_InvalidScope(t *testing.T) {
	t.Parallel()

	h := handlers.NewAssignmentHandler(&stubResolverUsecase{
		resolveFn: func(context.Context, domain.Scope) (resolver.Resolution, error) {
			return resolver.Resolution{}, apperr.ErrInvalid
		},
	})

	body := `{"company_id":0,"site_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/assignments/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Resolve(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAssignmentHandler_Resolve_InternalError(t *testing.T) {
	t.Parallel()

	h := handlers.NewAssignmentHandler(&stubResolverUsecase{
		resolveFn: func(context.Context, domain.Scope) (resolver.Resolution, error) {
			return resolver.Resolution{}, errors.New("db down")
		},
	})

	body := `{"company_id":1,"site_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/assignments/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Resolve(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAssignmentHandler_Resolve_BadJSON(t *testing.T) {
	t.Parallel()

	h := handlers.NewAssignmentHandler(&stubResolverUsecase{
		resolveFn: func(context.Context, domain.Scope) (resolver.Resolution, error) {
			require.FailNow(t, "ResolveSite must not be called on invalid JSON")
			return resolver.Resolution{}, nil
		},
	})

	body := `{"company_id":1,`
	req := httptest.NewRequest(http.MethodPost, "/assignments/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Resolve(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
