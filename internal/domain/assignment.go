package domain

// AssignmentType tags the provenance of a computed assignment.
type AssignmentType string

// List of possible assignment provenance tags
const (
	AssignManual      AssignmentType = "manual"
	AssignPreference  AssignmentType = "preference"
	AssignVC          AssignmentType = "vc-assigned"
	AssignAirportPool AssignmentType = "airport-driver-pool"
	AssignAirportAuto AssignmentType = "airport-auto"
	AssignSeniority   AssignmentType = "seniority"
)

var allowedAssignmentTypes = [...]AssignmentType{
	AssignManual, AssignPreference, AssignVC,
	AssignAirportPool, AssignAirportAuto, AssignSeniority,
}

// Valid checks if the AssignmentType is valid
func (t AssignmentType) Valid() bool {
	for _, v := range allowedAssignmentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Assignment pairs a driver with a job. It is a pure projection recomputed
// on every resolution; it is never persisted as a source of truth.
type Assignment struct {
	DriverID int64
	JobID    int64
	Type     AssignmentType
}
