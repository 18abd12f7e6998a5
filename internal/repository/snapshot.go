package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rosterbid/internal/domain"
)

// SnapshotRepo reads a consistent per-site snapshot for resolution.
type SnapshotRepo struct{ db *pgxpool.Pool }

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(db *pgxpool.Pool) *SnapshotRepo { return &SnapshotRepo{db: db} }

// Load reads drivers, jobs, submissions, manual pins and the auto-assign
// toggle inside a single repeatable-read transaction, so a concurrent roster
// edit or submission cannot be partially visible to one resolution call.
func (r *SnapshotRepo) Load(ctx context.Context, scope domain.Scope) (snap *domain.Snapshot, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed && err == nil {
			err = fmt.Errorf("rollback snapshot tx: %w", rbErr)
			snap = nil
		}
	}()

	s := &domain.Snapshot{Scope: scope}

	if s.Drivers, err = loadDrivers(ctx, tx, scope); err != nil {
		return nil, err
	}
	if s.Jobs, err = loadJobs(ctx, tx, scope); err != nil {
		return nil, err
	}
	if s.Submissions, err = loadSubmissions(ctx, tx, scope); err != nil {
		return nil, err
	}
	if s.Manual, err = loadManual(ctx, tx, scope); err != nil {
		return nil, err
	}
	if s.AutoAssign, err = loadAutoAssign(ctx, tx, scope); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot tx: %w", err)
	}
	return s, nil
}

func loadDrivers(ctx context.Context, tx pgx.Tx, scope domain.Scope) ([]domain.Driver, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+driverColumns+` FROM drivers
         WHERE company_id=$1 AND site_id=$2
         ORDER BY seniority_number, employee_id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("snapshot drivers: %w", err)
	}
	defer rows.Close()

	var out []domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func loadJobs(ctx context.Context, tx pgx.Tx, scope domain.Scope) ([]domain.Job, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id=$1 AND site_id=$2 ORDER BY id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("snapshot jobs: %w", err)
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func loadSubmissions(ctx context.Context, tx pgx.Tx, scope domain.Scope) ([]domain.PreferenceSubmission, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, driver_id, job_ids, submitted_at, company_id, site_id
         FROM preference_submissions
         WHERE company_id=$1 AND site_id=$2
         ORDER BY submitted_at, id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("snapshot submissions: %w", err)
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

func loadManual(ctx context.Context, tx pgx.Tx, scope domain.Scope) ([]domain.ManualAssignment, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, driver_id, job_id, company_id, site_id
         FROM manual_assignments
         WHERE company_id=$1 AND site_id=$2
         ORDER BY job_id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("snapshot manual assignments: %w", err)
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

func loadAutoAssign(ctx context.Context, tx pgx.Tx, scope domain.Scope) (bool, error) {
	var enabled bool
	err := tx.QueryRow(ctx,
		`SELECT auto_assign FROM site_settings WHERE company_id=$1 AND site_id=$2`,
		scope.CompanyID, scope.SiteID).Scan(&enabled)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("snapshot auto-assign toggle: %w", err)
	}
	return enabled, nil
}
