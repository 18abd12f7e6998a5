package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// PreferenceRepo stores preference submissions, manual assignment pins and
// the per-site auto-assign toggle.
type PreferenceRepo struct{ db *pgxpool.Pool }

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(db *pgxpool.Pool) *PreferenceRepo { return &PreferenceRepo{db: db} }

// InsertSubmission appends a new preference submission. Submissions are
// never edited in place; a newer submission supersedes older ones at read
// time.
func (r *PreferenceRepo) InsertSubmission(ctx context.Context, s *domain.PreferenceSubmission) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO preference_submissions(driver_id, job_ids, submitted_at, company_id, site_id)
         VALUES($1,$2,$3,$4,$5) RETURNING id`,
		s.DriverID, s.JobIDs, s.SubmittedAt, s.CompanyID, s.SiteID).Scan(&id)
	if err != nil {
		if IsForeignKey(err) {
			return 0, apperr.ErrNotFound
		}
		return 0, fmt.Errorf("insert preference submission: %w", err)
	}
	return id, nil
}

// ListSubmissions returns the site's full submission history ordered by
// submission time, then insertion order. The last row per driver wins on
// identical timestamps, which keeps the latest-per-driver selection
// deterministic.
func (r *PreferenceRepo) ListSubmissions(ctx context.Context, scope domain.Scope) ([]domain.PreferenceSubmission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, driver_id, job_ids, submitted_at, company_id, site_id
         FROM preference_submissions
         WHERE company_id=$1 AND site_id=$2
         ORDER BY submitted_at, id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("list preference submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.PreferenceSubmission
	for rows.Next() {
		var s domain.PreferenceSubmission
		if err := rows.Scan(&s.ID, &s.DriverID, &s.JobIDs, &s.SubmittedAt, &s.CompanyID, &s.SiteID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PinManual inserts a manual assignment pin. A job holds at most one pin;
// pinning an already-pinned job supersedes the previous driver.
func (r *PreferenceRepo) PinManual(ctx context.Context, m *domain.ManualAssignment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO manual_assignments(driver_id, job_id, company_id, site_id)
        VALUES($1,$2,$3,$4)
        ON CONFLICT (job_id) DO UPDATE
            SET driver_id = EXCLUDED.driver_id, updated_at = now()
        RETURNING id
    `, m.DriverID, m.JobID, m.CompanyID, m.SiteID).Scan(&id)
	if err != nil {
		if IsForeignKey(err) {
			return 0, apperr.ErrNotFound
		}
		return 0, fmt.Errorf("pin manual assignment: %w", err)
	}
	return id, nil
}

// UnpinManual removes the pin for a job and returns true if a row was affected.
func (r *PreferenceRepo) UnpinManual(ctx context.Context, scope domain.Scope, jobID int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM manual_assignments WHERE job_id=$1 AND company_id=$2 AND site_id=$3`,
		jobID, scope.CompanyID, scope.SiteID)
	if err != nil {
		return false, fmt.Errorf("unpin manual assignment for job %d: %w", jobID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListManual returns the site's manual assignment pins ordered by job id.
func (r *PreferenceRepo) ListManual(ctx context.Context, scope domain.Scope) ([]domain.ManualAssignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, driver_id, job_id, company_id, site_id
         FROM manual_assignments
         WHERE company_id=$1 AND site_id=$2
         ORDER BY job_id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("list manual assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.ManualAssignment
	for rows.Next() {
		var m domain.ManualAssignment
		if err := rows.Scan(&m.ID, &m.DriverID, &m.JobID, &m.CompanyID, &m.SiteID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetAutoAssign returns the site's auto-assign toggle. A missing row reads
// as false: automatic fallback passes are opt-in per site.
func (r *PreferenceRepo) GetAutoAssign(ctx context.Context, scope domain.Scope) (bool, error) {
	var enabled bool
	err := r.db.QueryRow(ctx,
		`SELECT auto_assign FROM site_settings WHERE company_id=$1 AND site_id=$2`,
		scope.CompanyID, scope.SiteID).Scan(&enabled)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get auto-assign toggle: %w", err)
	}
	return enabled, nil
}

// SetAutoAssign upserts the site's auto-assign toggle.
func (r *PreferenceRepo) SetAutoAssign(ctx context.Context, scope domain.Scope, enabled bool) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO site_settings(company_id, site_id, auto_assign)
        VALUES($1,$2,$3)
        ON CONFLICT (company_id, site_id) DO UPDATE
            SET auto_assign = EXCLUDED.auto_assign, updated_at = now()
    `, scope.CompanyID, scope.SiteID, enabled)
	if err != nil {
		return fmt.Errorf("set auto-assign toggle: %w", err)
	}
	return nil
}
