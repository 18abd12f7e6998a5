package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/http/handlers"
)

type stubJobUsecase struct {
	getFn    func(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error)
	listFn   func(ctx context.Context, scope domain.Scope) ([]domain.Job, error)
	createFn func(ctx context.Context, j *domain.Job) (int64, error)
	deleteFn func(ctx context.Context, scope domain.Scope, id int64) error
}

func (s *stubJobUsecase) Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error) {
	return s.getFn(ctx, scope, id)
}

func (s *stubJobUsecase) List(ctx context.Context, scope domain.Scope) ([]domain.Job, error) {
	return s.listFn(ctx, scope)
}

func (s *stubJobUsecase) Create(ctx context.Context, j *domain.Job) (int64, error) {
	return s.createFn(ctx, j)
}

func (s *stubJobUsecase) Delete(ctx context.Context, scope domain.Scope, id int64) error {
	return s.deleteFn(ctx, scope, id)
}

func TestJobHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	uc := &stubJobUsecase{
		getFn: func(_ context.Context, _ domain.Scope, id int64) (*domain.Job, error) {
			require.Equal(t, int64(10), id)
			return &domain.Job{ID: 10, Label: "AM sort", StartTime: "06:30", WeekDays: "MTWRF", Airport: true}, nil
		},
	}
	h := handlers.NewJobHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/job/10?company_id=1&site_id=2", nil)
	req = withURLParam(req, "id", "10")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		ID      int64  `json:"id"`
		Label   string `json:"label"`
		Airport bool   `json:"airport"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(10), resp.ID)
	require.Equal(t, "AM sort", resp.Label)
	require.True(t, resp.Airport)
}

func TestJobHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	h := handlers.NewJobHandler(&stubJobUsecase{
		getFn: func(context.Context, domain.Scope, int64) (*domain.Job, error) {
			return nil, apperr.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/job/10?company_id=1&site_id=2", nil)
	req = withURLParam(req, "id", "10")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestJobHandler_List_OK(t *testing.T) {
	t.Parallel()

	h := handlers.NewJobHandler(&stubJobUsecase{
		listFn: func(context.Context, domain.Scope) ([]domain.Job, error) {
			return []domain.Job{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/jobs?company_id=1&site_id=2", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 3)
}

func TestJobHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		var gotModel *domain.Job
		h := handlers.NewJobHandler(&stubJobUsecase{
			createFn: func(_ context.Context, j *domain.Job) (int64, error) {
				gotModel = j
				return 11, nil
			},
		})

		body := `{"label":"AM sort","start_time":"06:30","week_days":"MTWRF","airport":true,"company_id":1,"site_id":2}`
		req := httptest.NewRequest(http.MethodPost, "/job", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Equal(t, "/job/11", rr.Header().Get("Location"))
		require.NotNil(t, gotModel)
		require.True(t, gotModel.Airport)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewJobHandler(&stubJobUsecase{
			createFn: func(context.Context, *domain.Job) (int64, error) {
				return 0, apperr.ErrInvalid
			},
		})

		body := `{"label":"","start_time":"25:00","company_id":1,"site_id":2}`
		req := httptest.NewRequest(http.MethodPost, "/job", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestJobHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("no content", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewJobHandler(&stubJobUsecase{
			deleteFn: func(context.Context, domain.Scope, int64) error { return nil },
		})

		req := httptest.NewRequest(http.MethodDelete, "/job/10?company_id=1&site_id=2", nil)
		req = withURLParam(req, "id", "10")
		rr := httptest.NewRecorder()

		h.Delete(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewJobHandler(&stubJobUsecase{
			deleteFn: func(context.Context, domain.Scope, int64) error { return apperr.ErrNotFound },
		})

		req := httptest.NewRequest(http.MethodDelete, "/job/10?company_id=1&site_id=2", nil)
		req = withURLParam(req, "id", "10")
		rr := httptest.NewRecorder()

		h.Delete(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
