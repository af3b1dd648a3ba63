package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/models"
	"github.com/workroster/workroster-api/internal/repository"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

const requestedDateLayout = "2006-01-02"

type requestStore interface {
	Create(ctx context.Context, request *models.ScheduleRequest) error
	GetByID(ctx context.Context, id string) (*models.ScheduleRequest, error)
	List(ctx context.Context, filter models.ScheduleRequestFilter) ([]models.ScheduleRequest, error)
	Decide(ctx context.Context, params repository.DecideRequestParams) error
}

// RequestService owns the change-request lifecycle: pending on submission,
// decided exactly once, terminal thereafter. Approving a schedule_change
// request records the decision only; the timetable edit stays a separate
// explicit action so the two events can be audited independently.
type RequestService struct {
	repo      requestStore
	audit     auditLogger
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRequestService constructs the service.
func NewRequestService(repo requestStore, audit auditLogger, validate *validator.Validate, logger *zap.Logger) *RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RequestService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// Submit stores a new pending request for the acting employee.
func (s *RequestService) Submit(ctx context.Context, req dto.CreateScheduleRequest, actor *models.JWTClaims) (*models.ScheduleRequest, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if actor.Role != models.RoleEmployee {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only employees can submit schedule requests")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload")
	}
	if !models.ValidRequestType(req.RequestType) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "request_type must be day_off or schedule_change")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reason is required")
	}
	if _, err := time.Parse(requestedDateLayout, req.RequestedDate); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "requested_date must be a YYYY-MM-DD date")
	}

	request := &models.ScheduleRequest{
		EmployeeID:        actor.UserID,
		Type:              req.RequestType,
		RequestedDate:     req.RequestedDate,
		CurrentSchedule:   optionalString(req.CurrentSchedule),
		RequestedSchedule: optionalString(req.RequestedSchedule),
		Reason:            strings.TrimSpace(req.Reason),
		Status:            models.RequestStatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule request")
	}
	s.emitAudit(ctx, actor.UserID, models.AuditActionRequestSubmit, request)
	return request, nil
}

// List returns requests visible to the actor: employees see only their own,
// coordinators and admins see everything.
func (s *RequestService) List(ctx context.Context, actor *models.JWTClaims) ([]models.ScheduleRequest, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	filter := models.ScheduleRequestFilter{}
	if actor.Role == models.RoleEmployee {
		filter.EmployeeID = actor.UserID
	}
	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule requests")
	}
	return requests, nil
}

// ListPending returns the review queue, oldest submission first.
func (s *RequestService) ListPending(ctx context.Context, actor *models.JWTClaims) ([]models.ScheduleRequest, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}
	requests, err := s.repo.List(ctx, models.ScheduleRequestFilter{
		Status: []models.RequestStatus{models.RequestStatusPending},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending requests")
	}
	return requests, nil
}

// Decide transitions a pending request to approved or rejected. The
// repository guard makes the transition exactly-once; a concurrent second
// decision surfaces as a conflict.
func (s *RequestService) Decide(ctx context.Context, id string, req dto.DecideScheduleRequest, actor *models.JWTClaims) (*models.ScheduleRequest, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusApproved && req.Status != models.RequestStatusRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be approved or rejected")
	}
	response := strings.TrimSpace(req.Response)
	if response == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "response is required")
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule request")
	}
	if request.Status != models.RequestStatusPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, "schedule request already decided")
	}

	now := time.Now().UTC()
	err = s.repo.Decide(ctx, repository.DecideRequestParams{
		ID:        request.ID,
		Status:    req.Status,
		Response:  response,
		DecidedBy: actor.UserID,
		DecidedAt: now,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "schedule request already decided")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decide schedule request")
	}

	request.Status = req.Status
	request.CoordinatorResponse = &response
	request.DecidedBy = &actor.UserID
	request.DecidedAt = &now
	s.emitAudit(ctx, actor.UserID, models.AuditActionRequestDecide, request)
	return request, nil
}

func (s *RequestService) emitAudit(ctx context.Context, userID string, action models.AuditAction, request *models.ScheduleRequest) {
	if s.audit == nil {
		return
	}
	payload, _ := json.Marshal(request)
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   "schedule_request",
		ResourceID: &request.ID,
		NewValues:  payload,
		IPAddress:  "system",
		UserAgent:  "request-service",
	}
	if err := s.audit.CreateAuditLog(ctx, log); err != nil {
		s.logger.Warn("failed to persist audit log", zap.Error(err))
	}
}

func requireReviewer(actor *models.JWTClaims) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleCoordinator {
		return appErrors.ErrForbidden
	}
	return nil
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := strings.TrimSpace(value)
	return &v
}
