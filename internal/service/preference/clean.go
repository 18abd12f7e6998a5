package preference

import (
	"sort"

	"rosterbid/internal/domain"
)

// LatestPerDriver selects the authoritative submission per driver: the one
// with the latest submission time. Identical timestamps resolve by input
// order, last seen wins; the stores return submission history in
// (submittedAt, insertion) order, so the most recent insert prevails.
// The result is ordered by driver id.
func LatestPerDriver(subs []domain.PreferenceSubmission) []domain.PreferenceSubmission {
	latest := make(map[int64]domain.PreferenceSubmission, len(subs))
	for _, s := range subs {
		prev, ok := latest[s.DriverID]
		if !ok || !s.SubmittedAt.Before(prev.SubmittedAt) {
			latest[s.DriverID] = s
		}
	}

	out := make([]domain.PreferenceSubmission, 0, len(latest))
	for _, s := range latest {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DriverID < out[j].DriverID })
	return out
}

// CleanLists filters each driver's ordered job list to ids present in jobs,
// preserving relative order. Stale references (jobs deleted after
// submission) are recovered here, never surfaced as errors. Cleaning an
// already-clean list is a no-op, so the step is idempotent.
func CleanLists(subs []domain.PreferenceSubmission, jobs []domain.Job) map[int64][]int64 {
	valid := make(map[int64]bool, len(jobs))
	for _, j := range jobs {
		valid[j.ID] = true
	}

	out := make(map[int64][]int64, len(subs))
	for _, s := range subs {
		cleaned := make([]int64, 0, len(s.JobIDs))
		for _, jobID := range s.JobIDs {
			if valid[jobID] {
				cleaned = append(cleaned, jobID)
			}
		}
		out[s.DriverID] = cleaned
	}
	return out
}
