package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	"github.com/workroster/workroster-api/internal/service"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
	"github.com/workroster/workroster-api/pkg/response"
)

type rosterService interface {
	ExportAll(ctx context.Context, actor *models.JWTClaims) ([]byte, error)
	ExportOwn(ctx context.Context, userID string, format service.ExportFormat, actor *models.JWTClaims) ([]byte, error)
	Template(ctx context.Context, actor *models.JWTClaims) ([]byte, error)
	Import(ctx context.Context, reader io.Reader, actor *models.JWTClaims) (*dto.ImportResult, error)
}

// RosterHandler manages bulk import and export of schedules.
type RosterHandler struct {
	service rosterService
}

// NewRosterHandler constructs the handler.
func NewRosterHandler(svc rosterService) *RosterHandler {
	return &RosterHandler{service: svc}
}

// ExportAll godoc
// @Summary Export every employee's schedule as CSV
// @Tags Roster
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Router /export-schedules [get]
func (h *RosterHandler) ExportAll(c *gin.Context) {
	payload, err := h.service.ExportAll(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	sendAttachment(c, "schedules.csv", "text/csv", payload)
}

// ExportOwn godoc
// @Summary Export the authenticated user's schedule
// @Tags Roster
// @Produce text/csv
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {string} string "Exported payload"
// @Router /my-schedule/export [get]
func (h *RosterHandler) ExportOwn(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	payload, err := h.service.ExportOwn(c.Request.Context(), claims.UserID, format, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	if format == service.FormatPDF {
		sendAttachment(c, "my-schedule.pdf", "application/pdf", payload)
		return
	}
	sendAttachment(c, "my-schedule.csv", "text/csv", payload)
}

// Template godoc
// @Summary Download the import template
// @Tags Roster
// @Produce text/csv
// @Success 200 {string} string "CSV template"
// @Router /download-template [get]
func (h *RosterHandler) Template(c *gin.Context) {
	payload, err := h.service.Template(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	sendAttachment(c, "schedule-template.csv", "text/csv", payload)
}

// Import godoc
// @Summary Bulk import schedules from an uploaded CSV file
// @Tags Roster
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} response.Envelope
// @Router /import-schedules [post]
func (h *RosterHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "missing file upload"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unreadable file"))
		return
	}
	defer file.Close()

	result, err := h.service.Import(c.Request.Context(), file, middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func sendAttachment(c *gin.Context, filename, contentType string, payload []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
