package kafka

import (
	"time"

	"rosterbid/internal/domain"
)

// EventDTO is the wire shape of a preference-submitted event published by
// the portal frontend.
type EventDTO struct {
	CompanyID   int64     `json:"company_id"`
	SiteID      int64     `json:"site_id"`
	DriverID    int64     `json:"driver_id"`
	JobIDs      []int64   `json:"job_ids"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ToDomain converts EventDTO to a domain.PreferenceSubmission.
func ToDomain(dto EventDTO) domain.PreferenceSubmission {
	return domain.PreferenceSubmission{
		DriverID:    dto.DriverID,
		JobIDs:      dto.JobIDs,
		SubmittedAt: dto.SubmittedAt,
		CompanyID:   dto.CompanyID,
		SiteID:      dto.SiteID,
	}
}
