package domain

import "time"

// PreferenceSubmission is one driver submission of ordered job preferences.
// Submissions are append-only; a newer submission supersedes older ones.
type PreferenceSubmission struct {
	ID          int64
	DriverID    int64
	JobIDs      []int64
	SubmittedAt time.Time
	CompanyID   int64
	SiteID      int64
}

// ManualAssignment is an administrator override pinning a driver to a job.
// At most one pin exists per job; a new pin for the same job supersedes it.
type ManualAssignment struct {
	ID        int64
	DriverID  int64
	JobID     int64
	CompanyID int64
	SiteID    int64
}
