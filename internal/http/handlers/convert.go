package handlers

import (
	"rosterbid/internal/domain"
	"rosterbid/internal/service/reporting"
	"rosterbid/internal/service/resolver"
)

func (r createDriverRequest) toModel() *domain.Driver {
	return &domain.Driver{
		EmployeeID:       r.EmployeeID,
		Name:             r.Name,
		SeniorityNumber:  r.SeniorityNumber,
		VCStatus:         r.VCStatus,
		AirportCertified: r.AirportCertified,
		Eligible:         r.Eligible,
		CompanyID:        r.CompanyID,
		SiteID:           r.SiteID,
	}
}

func (r updateDriverRequest) toModel() domain.PartialDriverUpdate {
	return domain.PartialDriverUpdate{
		ID:               r.ID,
		Name:             r.Name,
		SeniorityNumber:  r.SeniorityNumber,
		VCStatus:         r.VCStatus,
		AirportCertified: r.AirportCertified,
		Eligible:         r.Eligible,
	}
}

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:               d.ID,
		EmployeeID:       d.EmployeeID,
		Name:             d.Name,
		SeniorityNumber:  d.SeniorityNumber,
		VCStatus:         d.VCStatus,
		AirportCertified: d.AirportCertified,
		Eligible:         d.Eligible,
		CompanyID:        d.CompanyID,
		SiteID:           d.SiteID,
	}
}

func driversToResponse(list []domain.Driver) []driverDTO {
	out := make([]driverDTO, 0, len(list))
	for _, d := range list {
		out = append(out, driverToResponse(d))
	}
	return out
}

func (r createJobRequest) toModel() *domain.Job {
	return &domain.Job{
		Label:     r.Label,
		StartTime: r.StartTime,
		WeekDays:  r.WeekDays,
		Airport:   r.Airport,
		CompanyID: r.CompanyID,
		SiteID:    r.SiteID,
	}
}

func jobToResponse(j domain.Job) jobDTO {
	return jobDTO{
		ID:        j.ID,
		Label:     j.Label,
		StartTime: j.StartTime,
		WeekDays:  j.WeekDays,
		Airport:   j.Airport,
		CompanyID: j.CompanyID,
		SiteID:    j.SiteID,
	}
}

func jobsToResponse(list []domain.Job) []jobDTO {
	out := make([]jobDTO, 0, len(list))
	for _, j := range list {
		out = append(out, jobToResponse(j))
	}
	return out
}

func (r submitPreferencesRequest) toModel() *domain.PreferenceSubmission {
	return &domain.PreferenceSubmission{
		DriverID:  r.DriverID,
		JobIDs:    r.JobIDs,
		CompanyID: r.CompanyID,
		SiteID:    r.SiteID,
	}
}

func preferencesToResponse(list []domain.PreferenceSubmission) []preferenceDTO {
	out := make([]preferenceDTO, 0, len(list))
	for _, s := range list {
		out = append(out, preferenceDTO{
			DriverID:    s.DriverID,
			JobIDs:      s.JobIDs,
			SubmittedAt: s.SubmittedAt,
		})
	}
	return out
}

func (r pinRequest) toModel() *domain.ManualAssignment {
	return &domain.ManualAssignment{
		DriverID:  r.DriverID,
		JobID:     r.JobID,
		CompanyID: r.CompanyID,
		SiteID:    r.SiteID,
	}
}

func pinsToResponse(list []domain.ManualAssignment) []pinDTO {
	out := make([]pinDTO, 0, len(list))
	for _, m := range list {
		out = append(out, pinDTO{ID: m.ID, DriverID: m.DriverID, JobID: m.JobID})
	}
	return out
}

func resolutionToResponse(res resolver.Resolution) resolveResponse {
	rows := reporting.Classify(res.Assignments, res.Preferences)
	sum := reporting.Summarize(rows)

	assignments := make([]assignmentDTO, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, assignmentDTO{
			DriverID:       row.DriverID,
			JobID:          row.JobID,
			AssignmentType: row.Type,
			Outcome:        row.Outcome,
			PreferenceRank: row.PreferenceRank,
		})
	}

	byType := make(map[string]int, len(sum.ByType))
	for t, n := range sum.ByType {
		byType[string(t)] = n
	}

	unassigned := res.UnassignedDrivers
	if unassigned == nil {
		unassigned = []int64{}
	}
	open := res.OpenJobs
	if open == nil {
		open = []int64{}
	}

	return resolveResponse{
		AutoAssign:        res.AutoAssign,
		Assignments:       assignments,
		UnassignedDrivers: unassigned,
		OpenJobs:          open,
		Summary: resolveSummaryDTO{
			Total:       sum.Total,
			FirstChoice: sum.FirstChoice,
			OtherPick:   sum.OtherPick,
			Auto:        sum.Auto,
			ByType:      byType,
		},
	}
}
