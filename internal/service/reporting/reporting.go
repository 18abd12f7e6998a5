package reporting

import "rosterbid/internal/domain"

// Outcome classifies how an assignment relates to the driver's submitted
// preferences. It is a display-level projection, independent of the
// resolver's provenance tag: a manual pin that happens to match the
// driver's first pick still classifies as first-choice.
type Outcome string

// List of possible assignment outcomes
const (
	OutcomeFirstChoice Outcome = "first-choice"
	OutcomeOtherPick   Outcome = "other-pick"
	OutcomeAuto        Outcome = "auto"
)

// Row is one classified assignment. PreferenceRank is 1-based; zero means
// the job was not on the driver's list (or the driver submitted nothing).
type Row struct {
	DriverID       int64
	JobID          int64
	Type           domain.AssignmentType
	Outcome        Outcome
	PreferenceRank int
}

// Summary aggregates outcome and provenance counts for dashboards.
type Summary struct {
	Total       int
	FirstChoice int
	OtherPick   int
	Auto        int
	ByType      map[domain.AssignmentType]int
}

// Classify tags each assignment with its preference outcome by looking the
// job up in the driver's cleaned preference list. Drivers with no submitted
// preferences classify as auto regardless of assignment type.
func Classify(assignments []domain.Assignment, prefs map[int64][]int64) []Row {
	rows := make([]Row, 0, len(assignments))
	for _, a := range assignments {
		row := Row{
			DriverID: a.DriverID,
			JobID:    a.JobID,
			Type:     a.Type,
			Outcome:  OutcomeAuto,
		}
		for i, jobID := range prefs[a.DriverID] {
			if jobID == a.JobID {
				row.PreferenceRank = i + 1
				if i == 0 {
					row.Outcome = OutcomeFirstChoice
				} else {
					row.Outcome = OutcomeOtherPick
				}
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Summarize aggregates classified rows into dashboard counts.
func Summarize(rows []Row) Summary {
	s := Summary{
		Total:  len(rows),
		ByType: make(map[domain.AssignmentType]int),
	}
	for _, r := range rows {
		switch r.Outcome {
		case OutcomeFirstChoice:
			s.FirstChoice++
		case OutcomeOtherPick:
			s.OtherPick++
		default:
			s.Auto++
		}
		s.ByType[r.Type]++
	}
	return s
}
