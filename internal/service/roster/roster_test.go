package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
)

type stubDriverRepo struct {
	byID     map[int64]domain.Driver
	created  []domain.Driver
	updated  *domain.Driver
	deleted  []int64
	deleteOK bool
}

func (s *stubDriverRepo) Get(_ context.Context, _ domain.Scope, id int64) (*domain.Driver, error) {
	if d, ok := s.byID[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *stubDriverRepo) List(_ context.Context, _ domain.Scope) ([]domain.Driver, error) {
	out := make([]domain.Driver, 0, len(s.byID))
	for _, d := range s.byID {
		out = append(out, d)
	}
	return out, nil
}

func (s *stubDriverRepo) Create(_ context.Context, d *domain.Driver) (int64, error) {
	s.created = append(s.created, *d)
	return int64(len(s.created)), nil
}

func (s *stubDriverRepo) UpdatePartial(_ context.Context, _ domain.Scope, _ int64, _ domain.PartialDriverUpdate) (*domain.Driver, error) {
	return s.updated, nil
}

func (s *stubDriverRepo) Delete(_ context.Context, _ domain.Scope, id int64) (bool, error) {
	s.deleted = append(s.deleted, id)
	return s.deleteOK, nil
}

type stubJobRepo struct {
	byID     map[int64]domain.Job
	created  []domain.Job
	deleteOK bool
}

func (s *stubJobRepo) Get(_ context.Context, _ domain.Scope, id int64) (*domain.Job, error) {
	if j, ok := s.byID[id]; ok {
		return &j, nil
	}
	return nil, nil
}

func (s *stubJobRepo) List(_ context.Context, _ domain.Scope) ([]domain.Job, error) {
	return nil, nil
}

func (s *stubJobRepo) Create(_ context.Context, j *domain.Job) (int64, error) {
	s.created = append(s.created, *j)
	return int64(len(s.created)), nil
}

func (s *stubJobRepo) Delete(_ context.Context, _ domain.Scope, _ int64) (bool, error) {
	return s.deleteOK, nil
}

var scope = domain.Scope{CompanyID: 1, SiteID: 1}

func validDriver() *domain.Driver {
	return &domain.Driver{
		EmployeeID:      "1234567",
		Name:            "Pat Jones",
		SeniorityNumber: 3,
		Eligible:        true,
		CompanyID:       1,
		SiteID:          1,
	}
}

func TestDriverService_Create(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo := &stubDriverRepo{}
		svc := NewDriverService(repo, logx.Nop(), time.Second)
		id, err := svc.Create(context.Background(), validDriver())
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
	})

	t.Run("bad employee id", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{}, logx.Nop(), time.Second)
		for _, emp := range []string{"", "123456", "12345678", "12a4567"} {
			d := validDriver()
			d.EmployeeID = emp
			_, err := svc.Create(context.Background(), d)
			require.ErrorIs(t, err, apperr.ErrInvalid, "employee id %q", emp)
		}
	})

	t.Run("negative seniority", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{}, logx.Nop(), time.Second)
		d := validDriver()
		d.SeniorityNumber = -1
		_, err := svc.Create(context.Background(), d)
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("missing scope", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{}, logx.Nop(), time.Second)
		d := validDriver()
		d.CompanyID = 0
		_, err := svc.Create(context.Background(), d)
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})
}

func TestDriverService_GetAndDelete(t *testing.T) {
	t.Parallel()

	existing := *validDriver()
	existing.ID = 7

	t.Run("get ok", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{byID: map[int64]domain.Driver{7: existing}}, logx.Nop(), time.Second)
		d, err := svc.Get(context.Background(), scope, 7)
		require.NoError(t, err)
		require.Equal(t, "1234567", d.EmployeeID)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{}, logx.Nop(), time.Second)
		_, err := svc.Get(context.Background(), scope, 7)
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{deleteOK: false}, logx.Nop(), time.Second)
		require.ErrorIs(t, svc.Delete(context.Background(), scope, 7), apperr.ErrNotFound)
	})
}

func TestDriverService_Update(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{}, logx.Nop(), time.Second)
		empty := ""
		_, err := svc.Update(context.Background(), scope, domain.PartialDriverUpdate{ID: 7, Name: &empty})
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("missing driver", func(t *testing.T) {
		t.Parallel()
		svc := NewDriverService(&stubDriverRepo{updated: nil}, logx.Nop(), time.Second)
		_, err := svc.Update(context.Background(), scope, domain.PartialDriverUpdate{ID: 7})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		updated := *validDriver()
		updated.ID = 7
		updated.Eligible = false
		svc := NewDriverService(&stubDriverRepo{updated: &updated}, logx.Nop(), time.Second)
		no := false
		d, err := svc.Update(context.Background(), scope, domain.PartialDriverUpdate{ID: 7, Eligible: &no})
		require.NoError(t, err)
		require.False(t, d.Eligible)
	})
}

func TestJobService_Create(t *testing.T) {
	t.Parallel()

	valid := func() *domain.Job {
		return &domain.Job{Label: "AM sort", StartTime: "06:30", WeekDays: "MTWRF", CompanyID: 1, SiteID: 1}
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc := NewJobService(&stubJobRepo{}, logx.Nop(), time.Second)
		id, err := svc.Create(context.Background(), valid())
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
	})

	t.Run("bad start time", func(t *testing.T) {
		t.Parallel()
		svc := NewJobService(&stubJobRepo{}, logx.Nop(), time.Second)
		for _, st := range []string{"", "24:00", "6:30", "06:60", "noon"} {
			j := valid()
			j.StartTime = st
			_, err := svc.Create(context.Background(), j)
			require.ErrorIs(t, err, apperr.ErrInvalid, "start time %q", st)
		}
	})

	t.Run("bad week days", func(t *testing.T) {
		t.Parallel()
		svc := NewJobService(&stubJobRepo{}, logx.Nop(), time.Second)
		for _, wd := range []string{"", "XYZ", "MTWRFSUM"} {
			j := valid()
			j.WeekDays = wd
			_, err := svc.Create(context.Background(), j)
			require.ErrorIs(t, err, apperr.ErrInvalid, "week days %q", wd)
		}
	})
}

func TestJobService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc := NewJobService(&stubJobRepo{deleteOK: true}, logx.Nop(), time.Second)
		require.NoError(t, svc.Delete(context.Background(), scope, 10))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svc := NewJobService(&stubJobRepo{}, logx.Nop(), time.Second)
		require.ErrorIs(t, svc.Delete(context.Background(), scope, 10), apperr.ErrNotFound)
	})
}
