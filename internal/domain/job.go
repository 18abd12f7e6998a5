package domain

import "regexp"

// Job represents an allocatable job slot owned by a company site.
type Job struct {
	ID        int64
	Label     string
	StartTime string
	WeekDays  string
	Airport   bool
	CompanyID int64
	SiteID    int64
}

// reStartTime is a regex for a 24-hour "HH:MM" start time.
var reStartTime = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// reWeekDays is a regex for a week-day pattern string, one letter per
// working day (M T W R F S U), e.g. "MTWRF".
var reWeekDays = regexp.MustCompile(`^[MTWRFSU]{1,7}$`)

// ValidateStartTime validates the job start time format.
func ValidateStartTime(s string) bool {
	return reStartTime.MatchString(s)
}

// ValidateWeekDays validates the week-day pattern string.
func ValidateWeekDays(s string) bool {
	return reWeekDays.MatchString(s)
}
