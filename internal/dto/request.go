package dto

import "github.com/workroster/workroster-api/internal/models"

// CreateScheduleRequest payload for submitting a day-off or shift-change ask.
type CreateScheduleRequest struct {
	RequestType       models.RequestType `json:"request_type" validate:"required"`
	RequestedDate     string             `json:"requested_date" validate:"required"`
	CurrentSchedule   string             `json:"current_schedule"`
	RequestedSchedule string             `json:"requested_schedule"`
	Reason            string             `json:"reason" validate:"required"`
}

// DecideScheduleRequest captures the coordinator decision and mandatory response text.
type DecideScheduleRequest struct {
	Status   models.RequestStatus `json:"status" validate:"required"`
	Response string               `json:"response" validate:"required"`
}
