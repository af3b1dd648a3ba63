package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/workroster/workroster-api/internal/models"
	"github.com/workroster/workroster-api/internal/repository"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

type scheduleStoreStub struct {
	schedules map[string]*models.WeeklySchedule
	upserts   int
}

func newScheduleStoreStub() *scheduleStoreStub {
	return &scheduleStoreStub{schedules: make(map[string]*models.WeeklySchedule)}
}

func (s *scheduleStoreStub) GetByUserID(ctx context.Context, userID string) (*models.WeeklySchedule, error) {
	if sched, ok := s.schedules[userID]; ok {
		copy := *sched
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (s *scheduleStoreStub) List(ctx context.Context) ([]models.WeeklySchedule, error) {
	result := make([]models.WeeklySchedule, 0, len(s.schedules))
	for _, sched := range s.schedules {
		result = append(result, *sched)
	}
	return result, nil
}

func (s *scheduleStoreStub) UpsertDay(ctx context.Context, userID, service string, day models.Weekday, times models.DayTimes) error {
	sched, ok := s.schedules[userID]
	if !ok {
		sched = &models.WeeklySchedule{ID: "sched-" + userID, UserID: userID}
		s.schedules[userID] = sched
	}
	sched.Service = service
	sched.SetDay(day, times)
	s.upserts++
	return nil
}

func (s *scheduleStoreStub) UpsertFull(ctx context.Context, sched *models.WeeklySchedule) error {
	stored := *sched
	if stored.ID == "" {
		stored.ID = "sched-" + sched.UserID
	}
	s.schedules[sched.UserID] = &stored
	s.upserts++
	return nil
}

type userDirectoryStub struct {
	users map[string]*models.User
}

func newUserDirectoryStub(users ...*models.User) *userDirectoryStub {
	stub := &userDirectoryStub{users: make(map[string]*models.User)}
	for _, u := range users {
		stub.users[u.ID] = u
	}
	return stub
}

func (s *userDirectoryStub) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (s *userDirectoryStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *userDirectoryStub) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *userDirectoryStub) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	result := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *userDirectoryStub) ListServices(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	var services []string
	for _, u := range s.users {
		if u.Service == "" {
			continue
		}
		if _, ok := seen[u.Service]; ok {
			continue
		}
		seen[u.Service] = struct{}{}
		services = append(services, u.Service)
	}
	return services, nil
}

func (s *userDirectoryStub) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(s.users)+1)
	}
	s.users[user.ID] = user
	return nil
}

func (s *userDirectoryStub) CountByRole(ctx context.Context, role models.UserRole) (int, error) {
	count := 0
	for _, u := range s.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type requestStoreStub struct {
	requests map[string]*models.ScheduleRequest
	filter   models.ScheduleRequestFilter
}

func newRequestStoreStub() *requestStoreStub {
	return &requestStoreStub{requests: make(map[string]*models.ScheduleRequest)}
}

func (s *requestStoreStub) Create(ctx context.Context, request *models.ScheduleRequest) error {
	if request.ID == "" {
		request.ID = fmt.Sprintf("req-%d", len(s.requests)+1)
	}
	request.CreatedAt = time.Now().UTC()
	stored := *request
	s.requests[request.ID] = &stored
	return nil
}

func (s *requestStoreStub) GetByID(ctx context.Context, id string) (*models.ScheduleRequest, error) {
	if req, ok := s.requests[id]; ok {
		copy := *req
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (s *requestStoreStub) List(ctx context.Context, filter models.ScheduleRequestFilter) ([]models.ScheduleRequest, error) {
	s.filter = filter
	result := make([]models.ScheduleRequest, 0, len(s.requests))
	for _, req := range s.requests {
		result = append(result, *req)
	}
	return result, nil
}

func (s *requestStoreStub) Decide(ctx context.Context, params repository.DecideRequestParams) error {
	req, ok := s.requests[params.ID]
	if !ok || req.Status != models.RequestStatusPending {
		return sql.ErrNoRows
	}
	req.Status = params.Status
	req.CoordinatorResponse = &params.Response
	req.DecidedBy = &params.DecidedBy
	req.DecidedAt = &params.DecidedAt
	return nil
}

type auditStub struct {
	logs []*models.AuditLog
}

func (a *auditStub) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	a.logs = append(a.logs, log)
	return nil
}

type cacheStub struct {
	gets    int
	sets    int
	deletes []string
}

func (c *cacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	c.gets++
	return appErrors.ErrCacheMiss
}

func (c *cacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.sets++
	return nil
}

func (c *cacheStub) DeleteByPattern(ctx context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	return nil
}

func str(v string) *string {
	return &v
}
