package domain

// Snapshot is a consistent, immutable view of one site's roster and
// preference state. Resolution runs over a Snapshot and never touches
// the stores it was read from.
type Snapshot struct {
	Scope       Scope
	Drivers     []Driver
	Jobs        []Job
	Submissions []PreferenceSubmission
	Manual      []ManualAssignment
	AutoAssign  bool
}
