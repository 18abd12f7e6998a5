package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

const driverColumns = `id, employee_id, name, seniority_number, vc_status, airport_certified, eligible, company_id, site_id`

func scanDriver(row interface{ Scan(...any) error }) (domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(&d.ID, &d.EmployeeID, &d.Name, &d.SeniorityNumber,
		&d.VCStatus, &d.AirportCertified, &d.Eligible, &d.CompanyID, &d.SiteID)
	return d, err
}

// Get - returns driver by its ID within the scope.
func (r *DriverRepo) Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Driver, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE id=$1 AND company_id=$2 AND site_id=$3`,
		id, scope.CompanyID, scope.SiteID)
	d, err := scanDriver(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return &d, nil
}

// List returns the site's drivers ordered by seniority number, then employee id.
func (r *DriverRepo) List(ctx context.Context, scope domain.Scope) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+driverColumns+` FROM drivers
         WHERE company_id=$1 AND site_id=$2
         ORDER BY seniority_number, employee_id`,
		scope.CompanyID, scope.SiteID)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
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

// Create - creates a new driver.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO drivers(employee_id, name, seniority_number, vc_status, airport_certified, eligible, company_id, site_id)
         VALUES($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		d.EmployeeID, d.Name, d.SeniorityNumber, d.VCStatus, d.AirportCertified, d.Eligible,
		d.CompanyID, d.SiteID).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a driver and returns the updated
// row, or nil when the driver does not exist within the scope.
func (r *DriverRepo) UpdatePartial(ctx context.Context, scope domain.Scope, id int64, u domain.PartialDriverUpdate) (*domain.Driver, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE drivers
        SET
            name              = COALESCE($4, name),
            seniority_number  = COALESCE($5, seniority_number),
            vc_status         = COALESCE($6, vc_status),
            airport_certified = COALESCE($7, airport_certified),
            eligible          = COALESCE($8, eligible),
            updated_at        = now()
        WHERE id = $1 AND company_id = $2 AND site_id = $3
        RETURNING `+driverColumns+`
    `, id, scope.CompanyID, scope.SiteID,
		u.Name, u.SeniorityNumber, u.VCStatus, u.AirportCertified, u.Eligible)
	d, err := scanDriver(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update driver %d: %w", id, err)
	}
	return &d, nil
}

// Delete removes a driver and returns true if a row was affected.
// Preference submissions referencing the driver are removed with it;
// manual pins cascade at the database level.
func (r *DriverRepo) Delete(ctx context.Context, scope domain.Scope, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM drivers WHERE id=$1 AND company_id=$2 AND site_id=$3`,
		id, scope.CompanyID, scope.SiteID)
	if err != nil {
		return false, fmt.Errorf("delete driver %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
