package domain

import "regexp"

// Driver represents a rostered driver within a company site.
type Driver struct {
	ID               int64
	EmployeeID       string
	Name             string
	SeniorityNumber  int
	VCStatus         bool
	AirportCertified bool
	Eligible         bool
	CompanyID        int64
	SiteID           int64
}

// PartialDriverUpdate carries optional fields to update a driver.
// A nil field means “do not change” that attribute.
type PartialDriverUpdate struct {
	ID               int64
	Name             *string
	SeniorityNumber  *int
	VCStatus         *bool
	AirportCertified *bool
	Eligible         *bool
}

// reEmployeeID is a regex for the fixed seven-digit employee identifier.
var reEmployeeID = regexp.MustCompile(`^[0-9]{7}$`)

// ValidateEmployeeID validates the employee identifier format.
func ValidateEmployeeID(s string) bool {
	return reEmployeeID.MatchString(s)
}
