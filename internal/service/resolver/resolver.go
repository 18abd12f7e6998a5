package resolver

import (
	"sort"

	"rosterbid/internal/domain"
)

// Input is the immutable snapshot slice Resolve works on. Preferences must
// already be de-duplicated (latest per driver) and cleaned of stale job ids.
type Input struct {
	Drivers     []domain.Driver
	Jobs        []domain.Job
	Preferences map[int64][]int64
	Manual      []domain.ManualAssignment
	AutoAssign  bool
}

// Result is the computed assignment set plus the terminal unresolved pools.
// Unresolved drivers and jobs are reported, never silently dropped.
type Result struct {
	Assignments       []domain.Assignment
	UnassignedDrivers []int64
	OpenJobs          []int64
}

// Resolve computes the job-to-driver assignment for one site snapshot.
// It is pure and deterministic: identical inputs yield identical results
// regardless of input slice ordering, and under/over-supply of jobs versus
// drivers is a normal terminal state, not an error.
//
// Claim passes run in strict order: manual pins, preference claims by
// seniority, then (only when AutoAssign is set) the vc-status, airport-pool,
// airport-auto and seniority fallback passes.
func Resolve(in Input) Result {
	st := newState(in)

	st.manualPass()
	st.preferencePass()
	if in.AutoAssign {
		st.vcPass()
		st.airportPass(domain.AssignAirportPool, true)
		st.airportPass(domain.AssignAirportAuto, false)
		st.seniorityPass()
	}

	return st.result()
}

type state struct {
	in Input

	driverByID map[int64]domain.Driver
	jobByID    map[int64]domain.Job

	// bySeniority holds eligible driver ids ascending by
	// (seniorityNumber, employeeID).
	bySeniority []int64
	// jobOrder holds job ids ascending.
	jobOrder []int64

	open     map[int64]bool
	assigned map[int64]bool

	out []domain.Assignment
}

func newState(in Input) *state {
	st := &state{
		in:         in,
		driverByID: make(map[int64]domain.Driver, len(in.Drivers)),
		jobByID:    make(map[int64]domain.Job, len(in.Jobs)),
		open:       make(map[int64]bool, len(in.Jobs)),
		assigned:   make(map[int64]bool),
	}

	for _, d := range in.Drivers {
		st.driverByID[d.ID] = d
		if d.Eligible {
			st.bySeniority = append(st.bySeniority, d.ID)
		}
	}
	sort.Slice(st.bySeniority, func(i, j int) bool {
		a, b := st.driverByID[st.bySeniority[i]], st.driverByID[st.bySeniority[j]]
		if a.SeniorityNumber != b.SeniorityNumber {
			return a.SeniorityNumber < b.SeniorityNumber
		}
		return a.EmployeeID < b.EmployeeID
	})

	for _, j := range in.Jobs {
		st.jobByID[j.ID] = j
		st.open[j.ID] = true
		st.jobOrder = append(st.jobOrder, j.ID)
	}
	sort.Slice(st.jobOrder, func(i, j int) bool { return st.jobOrder[i] < st.jobOrder[j] })

	return st
}

func (st *state) claim(driverID, jobID int64, t domain.AssignmentType) {
	st.out = append(st.out, domain.Assignment{DriverID: driverID, JobID: jobID, Type: t})
	delete(st.open, jobID)
	st.assigned[driverID] = true
}

// compatible reports whether the driver may hold the job: airport jobs
// require airport certification.
func compatible(d domain.Driver, j domain.Job) bool {
	return !j.Airport || d.AirportCertified
}

// manualPass emits administrator pins first. Pins are validated at write
// time; a pin whose driver or job was deleted afterwards, or whose driver
// lost eligibility or certification, is skipped here so the output
// invariants hold unconditionally. Pins are irrevocable for the remainder
// of resolution.
func (st *state) manualPass() {
	pins := append([]domain.ManualAssignment(nil), st.in.Manual...)
	sort.Slice(pins, func(i, j int) bool { return pins[i].JobID < pins[j].JobID })

	for _, m := range pins {
		d, okD := st.driverByID[m.DriverID]
		j, okJ := st.jobByID[m.JobID]
		if !okD || !okJ {
			continue
		}
		if !d.Eligible || !compatible(d, j) {
			continue
		}
		if !st.open[m.JobID] || st.assigned[m.DriverID] {
			continue
		}
		st.claim(m.DriverID, m.JobID, domain.AssignManual)
	}
}

// preferencePass serves remaining eligible drivers most-senior first; each
// claims the first job on its cleaned list that is still open and
// certification-compatible. A driver whose list is exhausted stays
// unassigned after this pass.
func (st *state) preferencePass() {
	for _, driverID := range st.bySeniority {
		if st.assigned[driverID] {
			continue
		}
		d := st.driverByID[driverID]
		for _, jobID := range st.in.Preferences[driverID] {
			j, ok := st.jobByID[jobID]
			if !ok || !st.open[jobID] || !compatible(d, j) {
				continue
			}
			st.claim(driverID, jobID, domain.AssignPreference)
			break
		}
	}
}

// vcPass lets still-unassigned vc-status drivers claim the lowest-id open
// compatible job, in seniority order.
func (st *state) vcPass() {
	for _, driverID := range st.bySeniority {
		if st.assigned[driverID] {
			continue
		}
		d := st.driverByID[driverID]
		if !d.VCStatus {
			continue
		}
		for _, jobID := range st.jobOrder {
			if !st.open[jobID] || !compatible(d, st.jobByID[jobID]) {
				continue
			}
			st.claim(driverID, jobID, domain.AssignVC)
			break
		}
	}
}

// wantsAirport reports whether the driver's cleaned preference list names
// at least one airport job.
func (st *state) wantsAirport(driverID int64) bool {
	for _, jobID := range st.in.Preferences[driverID] {
		if j, ok := st.jobByID[jobID]; ok && j.Airport {
			return true
		}
	}
	return false
}

// airportPass sweeps still-unassigned airport-certified drivers against
// open airport jobs in seniority order. It runs twice: first restricted to
// the airport driver pool (certified drivers who listed an airport job),
// tagged airport-driver-pool; then over every remaining certified driver,
// tagged airport-auto, catching airport jobs left open when the pool ran
// short. The two labels mirror the two categories the reporting layer
// distinguishes.
func (st *state) airportPass(tag domain.AssignmentType, poolOnly bool) {
	for _, driverID := range st.bySeniority {
		if st.assigned[driverID] {
			continue
		}
		d := st.driverByID[driverID]
		if !d.AirportCertified {
			continue
		}
		if poolOnly && !st.wantsAirport(driverID) {
			continue
		}
		for _, jobID := range st.jobOrder {
			if !st.open[jobID] || !st.jobByID[jobID].Airport {
				continue
			}
			st.claim(driverID, jobID, tag)
			break
		}
	}
}

// seniorityPass is the terminal fallback: remaining eligible drivers are
// matched one-to-one against open non-airport jobs ascending by job id,
// until either pool is exhausted.
func (st *state) seniorityPass() {
	jobIdx := 0
	for _, driverID := range st.bySeniority {
		if st.assigned[driverID] {
			continue
		}
		claimed := false
		for ; jobIdx < len(st.jobOrder); jobIdx++ {
			jobID := st.jobOrder[jobIdx]
			if !st.open[jobID] || st.jobByID[jobID].Airport {
				continue
			}
			st.claim(driverID, jobID, domain.AssignSeniority)
			jobIdx++
			claimed = true
			break
		}
		if !claimed {
			break
		}
	}
}

func (st *state) result() Result {
	res := Result{Assignments: st.out}

	for _, driverID := range st.bySeniority {
		if !st.assigned[driverID] {
			res.UnassignedDrivers = append(res.UnassignedDrivers, driverID)
		}
	}
	for _, jobID := range st.jobOrder {
		if st.open[jobID] {
			res.OpenJobs = append(res.OpenJobs, jobID)
		}
	}

	sort.Slice(res.Assignments, func(i, j int) bool {
		return res.Assignments[i].JobID < res.Assignments[j].JobID
	})
	return res
}
