package models

import "time"

// RequestType enumerates supported schedule request categories.
type RequestType string

const (
	RequestTypeDayOff         RequestType = "day_off"
	RequestTypeScheduleChange RequestType = "schedule_change"
)

// ValidRequestType reports whether the type is recognized.
func ValidRequestType(t RequestType) bool {
	return t == RequestTypeDayOff || t == RequestTypeScheduleChange
}

// RequestStatus captures workflow states for schedule requests.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// ScheduleRequest stores an employee's day-off or shift-change ask awaiting review.
// pending is the only non-terminal state; approved and rejected are final.
type ScheduleRequest struct {
	ID                  string        `db:"id" json:"id"`
	EmployeeID          string        `db:"employee_id" json:"employee_id"`
	Type                RequestType   `db:"request_type" json:"request_type"`
	RequestedDate       string        `db:"requested_date" json:"requested_date"`
	CurrentSchedule     *string       `db:"current_schedule" json:"current_schedule,omitempty"`
	RequestedSchedule   *string       `db:"requested_schedule" json:"requested_schedule,omitempty"`
	Reason              string        `db:"reason" json:"reason"`
	Status              RequestStatus `db:"status" json:"status"`
	CoordinatorResponse *string       `db:"coordinator_response" json:"coordinator_response,omitempty"`
	DecidedBy           *string       `db:"decided_by" json:"decided_by,omitempty"`
	DecidedAt           *time.Time    `db:"decided_at" json:"decided_at,omitempty"`
	CreatedAt           time.Time     `db:"created_at" json:"created_at"`
}

// ScheduleRequestFilter constrains listing queries.
type ScheduleRequestFilter struct {
	Status     []RequestStatus
	EmployeeID string
	Type       RequestType
}
