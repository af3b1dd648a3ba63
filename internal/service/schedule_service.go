package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

const (
	scheduleListCacheKey    = "schedules:all"
	scheduleCachePattern    = "schedules:*"
	scheduleUserCachePrefix = "schedules:user:"
)

type scheduleStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.WeeklySchedule, error)
	List(ctx context.Context) ([]models.WeeklySchedule, error)
	UpsertDay(ctx context.Context, userID, service string, day models.Weekday, times models.DayTimes) error
	UpsertFull(ctx context.Context, sched *models.WeeklySchedule) error
}

type scheduleUserDirectory interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type scheduleCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type auditLogger interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// ScheduleService owns the weekly schedule store boundary: reads are
// role-scoped, writes validate the within-day ordering invariant before
// anything is persisted.
type ScheduleService struct {
	store    scheduleStore
	users    scheduleUserDirectory
	cache    scheduleCache
	audit    auditLogger
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewScheduleService constructs the service.
func NewScheduleService(store scheduleStore, users scheduleUserDirectory, cache scheduleCache, audit auditLogger, cacheTTL time.Duration, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ScheduleService{store: store, users: users, cache: cache, audit: audit, cacheTTL: cacheTTL, logger: logger}
}

// Get returns one employee's schedule. Employees may only read their own.
func (s *ScheduleService) Get(ctx context.Context, userID string, actor *models.JWTClaims) (*models.WeeklySchedule, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if actor.Role == models.RoleEmployee && actor.UserID != userID {
		return nil, appErrors.ErrForbidden
	}

	if s.cache != nil {
		var cached models.WeeklySchedule
		if err := s.cache.Get(ctx, scheduleUserCachePrefix+userID, &cached); err == nil {
			return &cached, nil
		}
	}

	sched, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scheduleUserCachePrefix+userID, sched, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache schedule", zap.Error(err))
		}
	}
	return sched, nil
}

// List returns schedules in creation order. Employees only see their own row.
func (s *ScheduleService) List(ctx context.Context, actor *models.JWTClaims) ([]models.WeeklySchedule, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if actor.Role == models.RoleEmployee {
		sched, err := s.store.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return []models.WeeklySchedule{}, nil
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
		}
		return []models.WeeklySchedule{*sched}, nil
	}

	if s.cache != nil {
		var cached []models.WeeklySchedule
		if err := s.cache.Get(ctx, scheduleListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	schedules, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedules")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scheduleListCacheKey, schedules, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache schedule list", zap.Error(err))
		}
	}
	return schedules, nil
}

// UpsertDay replaces the four time fields of a single day and returns the
// updated schedule.
func (s *ScheduleService) UpsertDay(ctx context.Context, userID string, day models.Weekday, req dto.UpsertDayRequest, actor *models.JWTClaims) (*models.WeeklySchedule, error) {
	if err := requireScheduleWriter(actor); err != nil {
		return nil, err
	}
	if !models.ValidWeekday(day) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", day))
	}
	times := req.Times()
	if err := ValidateDayTimes(day, times); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}

	if err := s.store.UpsertDay(ctx, userID, user.Service, day, times); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule day")
	}
	s.invalidate(ctx, userID)

	updated, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload schedule")
	}
	s.emitAudit(ctx, actor, updated, models.AuditActionScheduleUpsert)
	return updated, nil
}

// UpsertFull replaces all seven days atomically: every day is validated before
// the single-row write commits.
func (s *ScheduleService) UpsertFull(ctx context.Context, userID string, req dto.UpsertWeekRequest, actor *models.JWTClaims) (*models.WeeklySchedule, error) {
	if err := requireScheduleWriter(actor); err != nil {
		return nil, err
	}

	week := req.Week()
	for _, day := range models.Weekdays {
		if err := ValidateDayTimes(day, week[day]); err != nil {
			return nil, err
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}

	service := req.Service
	if service == "" {
		service = user.Service
	}
	sched := &models.WeeklySchedule{UserID: userID, Service: service}
	for _, day := range models.Weekdays {
		sched.SetDay(day, week[day])
	}

	if err := s.store.UpsertFull(ctx, sched); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	s.invalidate(ctx, userID)

	updated, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload schedule")
	}
	s.emitAudit(ctx, actor, updated, models.AuditActionScheduleUpsert)
	return updated, nil
}

func (s *ScheduleService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, scheduleCachePattern); err != nil {
		s.logger.Warn("failed to invalidate schedule cache", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *ScheduleService) emitAudit(ctx context.Context, actor *models.JWTClaims, sched *models.WeeklySchedule, action models.AuditAction) {
	if s.audit == nil {
		return
	}
	payload, _ := json.Marshal(sched)
	log := &models.AuditLog{
		UserID:     &actor.UserID,
		Action:     action,
		Resource:   "schedule",
		ResourceID: &sched.UserID,
		NewValues:  payload,
		IPAddress:  "system",
		UserAgent:  "schedule-service",
	}
	if err := s.audit.CreateAuditLog(ctx, log); err != nil {
		s.logger.Warn("failed to persist audit log", zap.Error(err))
	}
}

func requireScheduleWriter(actor *models.JWTClaims) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleCoordinator {
		return appErrors.ErrForbidden
	}
	return nil
}
