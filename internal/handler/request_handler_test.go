package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

type requestServiceMock struct {
	submitResp   *models.ScheduleRequest
	submitErr    error
	listResp     []models.ScheduleRequest
	listErr      error
	decideResp   *models.ScheduleRequest
	decideErr    error
	decideID     string
	submitCalled bool
	decideCalled bool
}

func (m *requestServiceMock) Submit(ctx context.Context, req dto.CreateScheduleRequest, actor *models.JWTClaims) (*models.ScheduleRequest, error) {
	m.submitCalled = true
	return m.submitResp, m.submitErr
}

func (m *requestServiceMock) List(ctx context.Context, actor *models.JWTClaims) ([]models.ScheduleRequest, error) {
	return m.listResp, m.listErr
}

func (m *requestServiceMock) ListPending(ctx context.Context, actor *models.JWTClaims) ([]models.ScheduleRequest, error) {
	return m.listResp, m.listErr
}

func (m *requestServiceMock) Decide(ctx context.Context, id string, req dto.DecideScheduleRequest, actor *models.JWTClaims) (*models.ScheduleRequest, error) {
	m.decideCalled = true
	m.decideID = id
	return m.decideResp, m.decideErr
}

func TestRequestHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &requestServiceMock{
		submitResp: &models.ScheduleRequest{ID: "req-1", Status: models.RequestStatusPending},
	}
	handler := NewRequestHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateScheduleRequest{
		RequestType:   models.RequestTypeDayOff,
		RequestedDate: "2026-09-14",
		Reason:        "vacation",
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/schedule-requests", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "emp-1", Role: models.RoleEmployee})

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.submitCalled)
}

func TestRequestHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRequestHandler(&requestServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/schedule-requests", bytes.NewBufferString(`{"request_type":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "emp-1", Role: models.RoleEmployee})

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestHandlerDecideConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &requestServiceMock{
		decideErr: appErrors.Clone(appErrors.ErrConflict, "schedule request already decided"),
	}
	handler := NewRequestHandler(mockSvc)

	payload, _ := json.Marshal(dto.DecideScheduleRequest{Status: models.RequestStatusApproved, Response: "ok"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/schedule-requests/req-1/respond", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "req-1"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "coord-1", Role: models.RoleCoordinator})

	handler.Decide(c)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, mockSvc.decideCalled)
	assert.Equal(t, "req-1", mockSvc.decideID)
}

func TestRequestHandlerListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &requestServiceMock{
		listResp: []models.ScheduleRequest{{ID: "req-1", Status: models.RequestStatusPending}},
	}
	handler := NewRequestHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/pending-requests", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "coord-1", Role: models.RoleCoordinator})

	handler.ListPending(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "req-1")
}
