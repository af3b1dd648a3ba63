package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/workroster/workroster-api/internal/models"
)

const requestColumns = `id, employee_id, request_type, requested_date, current_schedule, requested_schedule,
       reason, status, coordinator_response, decided_by, decided_at, created_at`

// RequestRepository persists schedule change requests.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository constructs the repository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a new request row.
func (r *RequestRepository) Create(ctx context.Context, request *models.ScheduleRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO schedule_requests
	(id, employee_id, request_type, requested_date, current_schedule, requested_schedule, reason, status, coordinator_response, decided_by, decided_at, created_at)
	VALUES (:id, :employee_id, :request_type, :requested_date, :current_schedule, :requested_schedule, :reason, :status, :coordinator_response, :decided_by, :decided_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("create schedule request: %w", err)
	}
	return nil
}

// GetByID fetches a request by identifier.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.ScheduleRequest, error) {
	query := "SELECT " + requestColumns + " FROM schedule_requests WHERE id = $1"
	var request models.ScheduleRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns requests matching the filter, oldest first so review queues
// behave deterministically.
func (r *RequestRepository) List(ctx context.Context, filter models.ScheduleRequestFilter) ([]models.ScheduleRequest, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 4)
	builder.WriteString("SELECT " + requestColumns + " FROM schedule_requests")

	conditions := make([]string, 0, 3)
	if len(filter.Status) > 0 {
		placeholders := make([]string, len(filter.Status))
		for i, status := range filter.Status {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("request_type = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY created_at ASC")

	var requests []models.ScheduleRequest
	if err := r.db.SelectContext(ctx, &requests, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list schedule requests: %w", err)
	}
	return requests, nil
}

// DecideRequestParams groups the columns written by a review.
type DecideRequestParams struct {
	ID        string
	Status    models.RequestStatus
	Response  string
	DecidedBy string
	DecidedAt time.Time
}

// Decide transitions a pending request to a terminal state. The status guard
// in the WHERE clause makes the transition exactly-once: a concurrent second
// decision matches zero rows and surfaces sql.ErrNoRows.
func (r *RequestRepository) Decide(ctx context.Context, params DecideRequestParams) error {
	query := fmt.Sprintf(`UPDATE schedule_requests
	SET status = :status, coordinator_response = :response, decided_by = :decided_by, decided_at = :decided_at
	WHERE id = :id AND status = '%s'`, models.RequestStatusPending)

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         params.ID,
		"status":     params.Status,
		"response":   params.Response,
		"decided_by": params.DecidedBy,
		"decided_at": params.DecidedAt,
	})
	if err != nil {
		return fmt.Errorf("decide schedule request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check decide rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
