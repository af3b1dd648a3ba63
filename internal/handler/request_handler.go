package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
	"github.com/workroster/workroster-api/pkg/response"
)

type requestService interface {
	Submit(ctx context.Context, req dto.CreateScheduleRequest, actor *models.JWTClaims) (*models.ScheduleRequest, error)
	List(ctx context.Context, actor *models.JWTClaims) ([]models.ScheduleRequest, error)
	ListPending(ctx context.Context, actor *models.JWTClaims) ([]models.ScheduleRequest, error)
	Decide(ctx context.Context, id string, req dto.DecideScheduleRequest, actor *models.JWTClaims) (*models.ScheduleRequest, error)
}

// RequestHandler manages schedule request endpoints.
type RequestHandler struct {
	service requestService
}

// NewRequestHandler constructs the handler.
func NewRequestHandler(svc requestService) *RequestHandler {
	return &RequestHandler{service: svc}
}

// Create godoc
// @Summary Submit a day-off or schedule-change request
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.CreateScheduleRequest true "Request payload"
// @Success 201 {object} response.Envelope
// @Router /schedule-requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	request, err := h.service.Submit(c.Request.Context(), req, middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// List godoc
// @Summary List schedule requests visible to the caller
// @Tags Requests
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule-requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// ListPending godoc
// @Summary List the pending review queue, oldest first
// @Tags Requests
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /pending-requests [get]
func (h *RequestHandler) ListPending(c *gin.Context) {
	requests, err := h.service.ListPending(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// Decide godoc
// @Summary Approve or reject a pending request
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.DecideScheduleRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Router /schedule-requests/{id}/respond [put]
func (h *RequestHandler) Decide(c *gin.Context) {
	var req dto.DecideScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	request, err := h.service.Decide(c.Request.Context(), c.Param("id"), req, middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request)
}
