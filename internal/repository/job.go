package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// JobRepo represents job repository.
type JobRepo struct{ db *pgxpool.Pool }

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo { return &JobRepo{db: db} }

const jobColumns = `id, label, start_time, week_days, airport, company_id, site_id`

func scanJob(row interface{ Scan(...any) error }) (domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.Label, &j.StartTime, &j.WeekDays, &j.Airport, &j.CompanyID, &j.SiteID)
	return j, err
}

// Get - returns job by its ID within the scope.
func (r *JobRepo) Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id=$1 AND company_id=$2 AND site_id=$3`,
		id, scope.CompanyID, scope.SiteID)
	j, err := scanJob(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return &j, nil
}

// List returns the site's jobs ordered by id.
func (r *JobRepo) List(ctx context.Context, scope domain.Scope) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id=$1 AND site_id=$2 ORDER BY id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
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

// Create - creates a new job.
func (r *JobRepo) Create(ctx context.Context, j *domain.Job) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO jobs(label, start_time, week_days, airport, company_id, site_id)
         VALUES($1,$2,$3,$4,$5,$6) RETURNING id`,
		j.Label, j.StartTime, j.WeekDays, j.Airport, j.CompanyID, j.SiteID).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create job: %w", err)
	}
	return id, nil
}

// Delete removes a job and returns true if a row was affected. Manual pins
// for the job cascade at the database level; stale references inside
// preference submissions are tolerated and removed by the cleaning step.
func (r *JobRepo) Delete(ctx context.Context, scope domain.Scope, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM jobs WHERE id=$1 AND company_id=$2 AND site_id=$3`,
		id, scope.CompanyID, scope.SiteID)
	if err != nil {
		return false, fmt.Errorf("delete job %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
