package handlers

import (
	"time"

	"rosterbid/internal/domain"
	"rosterbid/internal/service/reporting"
)

type driverDTO struct {
	ID               int64  `json:"id"`
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	SeniorityNumber  int    `json:"seniority_number"`
	VCStatus         bool   `json:"vc_status"`
	AirportCertified bool   `json:"airport_certified"`
	Eligible         bool   `json:"eligible"`
	CompanyID        int64  `json:"company_id"`
	SiteID           int64  `json:"site_id"`
}

type createDriverRequest struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	SeniorityNumber  int    `json:"seniority_number"`
	VCStatus         bool   `json:"vc_status"`
	AirportCertified bool   `json:"airport_certified"`
	Eligible         bool   `json:"eligible"`
	CompanyID        int64  `json:"company_id"`
	SiteID           int64  `json:"site_id"`
}

type updateDriverRequest struct {
	ID               int64   `json:"id"`
	CompanyID        int64   `json:"company_id"`
	SiteID           int64   `json:"site_id"`
	Name             *string `json:"name,omitempty"`
	SeniorityNumber  *int    `json:"seniority_number,omitempty"`
	VCStatus         *bool   `json:"vc_status,omitempty"`
	AirportCertified *bool   `json:"airport_certified,omitempty"`
	Eligible         *bool   `json:"eligible,omitempty"`
}

type jobDTO struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	WeekDays  string `json:"week_days"`
	Airport   bool   `json:"airport"`
	CompanyID int64  `json:"company_id"`
	SiteID    int64  `json:"site_id"`
}

type createJobRequest struct {
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	WeekDays  string `json:"week_days"`
	Airport   bool   `json:"airport"`
	CompanyID int64  `json:"company_id"`
	SiteID    int64  `json:"site_id"`
}

type submitPreferencesRequest struct {
	CompanyID int64   `json:"company_id"`
	SiteID    int64   `json:"site_id"`
	DriverID  int64   `json:"driver_id"`
	JobIDs    []int64 `json:"job_ids"`
}

type preferenceDTO struct {
	DriverID    int64     `json:"driver_id"`
	JobIDs      []int64   `json:"job_ids"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type pinRequest struct {
	CompanyID int64 `json:"company_id"`
	SiteID    int64 `json:"site_id"`
	DriverID  int64 `json:"driver_id"`
	JobID     int64 `json:"job_id"`
}

type pinDTO struct {
	ID       int64 `json:"id"`
	DriverID int64 `json:"driver_id"`
	JobID    int64 `json:"job_id"`
}

type autoAssignRequest struct {
	CompanyID int64 `json:"company_id"`
	SiteID    int64 `json:"site_id"`
	Enabled   bool  `json:"enabled"`
}

type resolveRequest struct {
	CompanyID int64 `json:"company_id"`
	SiteID    int64 `json:"site_id"`
}

type assignmentDTO struct {
	DriverID       int64                 `json:"driver_id"`
	JobID          int64                 `json:"job_id"`
	AssignmentType domain.AssignmentType `json:"assignment_type"`
	Outcome        reporting.Outcome     `json:"outcome"`
	PreferenceRank int                   `json:"preference_rank,omitempty"`
}

type resolveSummaryDTO struct {
	Total       int            `json:"total"`
	FirstChoice int            `json:"first_choice"`
	OtherPick   int            `json:"other_pick"`
	Auto        int            `json:"auto"`
	ByType      map[string]int `json:"by_type"`
}

type resolveResponse struct {
	AutoAssign        bool              `json:"auto_assign"`
	Assignments       []assignmentDTO   `json:"assignments"`
	UnassignedDrivers []int64           `json:"unassigned_drivers"`
	OpenJobs          []int64           `json:"open_jobs"`
	Summary           resolveSummaryDTO `json:"summary"`
}
