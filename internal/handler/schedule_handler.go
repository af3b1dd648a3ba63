package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
	"github.com/workroster/workroster-api/pkg/response"
)

type scheduleService interface {
	Get(ctx context.Context, userID string, actor *models.JWTClaims) (*models.WeeklySchedule, error)
	List(ctx context.Context, actor *models.JWTClaims) ([]models.WeeklySchedule, error)
	UpsertDay(ctx context.Context, userID string, day models.Weekday, req dto.UpsertDayRequest, actor *models.JWTClaims) (*models.WeeklySchedule, error)
	UpsertFull(ctx context.Context, userID string, req dto.UpsertWeekRequest, actor *models.JWTClaims) (*models.WeeklySchedule, error)
}

// ScheduleHandler manages weekly schedule endpoints.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// List godoc
// @Summary List weekly schedules
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.service.List(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules)
}

// Get godoc
// @Summary Get one employee's weekly schedule
// @Tags Schedules
// @Produce json
// @Param userId path string true "Employee ID"
// @Success 200 {object} response.Envelope
// @Router /schedules/{userId} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	sched, err := h.service.Get(c.Request.Context(), c.Param("userId"), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sched)
}

// GetMine godoc
// @Summary Get the authenticated user's weekly schedule
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /my-schedule [get]
func (h *ScheduleHandler) GetMine(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	sched, err := h.service.Get(c.Request.Context(), claims.UserID, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sched)
}

// UpsertDay godoc
// @Summary Replace the four time fields of a single day
// @Tags Schedules
// @Accept json
// @Produce json
// @Param userId path string true "Employee ID"
// @Param day path string true "Day name (monday..sunday)"
// @Param payload body dto.UpsertDayRequest true "Day times"
// @Success 200 {object} response.Envelope
// @Router /schedules/{userId}/days/{day} [put]
func (h *ScheduleHandler) UpsertDay(c *gin.Context) {
	var req dto.UpsertDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	day := models.Weekday(strings.ToLower(c.Param("day")))
	sched, err := h.service.UpsertDay(c.Request.Context(), c.Param("userId"), day, req, middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sched)
}

// UpsertWeek godoc
// @Summary Replace all seven days of an employee's schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param userId path string true "Employee ID"
// @Param payload body dto.UpsertWeekRequest true "Week payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/{userId} [put]
func (h *ScheduleHandler) UpsertWeek(c *gin.Context) {
	var req dto.UpsertWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	sched, err := h.service.UpsertFull(c.Request.Context(), c.Param("userId"), req, middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sched)
}
