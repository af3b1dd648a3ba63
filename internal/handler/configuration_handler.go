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

type configurationService interface {
	Get(ctx context.Context) (*models.Configuration, error)
	Update(ctx context.Context, req dto.UpdateConfigurationRequest, actor *models.JWTClaims) (*models.Configuration, error)
}

// ConfigurationHandler manages the application settings endpoints.
type ConfigurationHandler struct {
	service configurationService
}

// NewConfigurationHandler constructs the handler.
func NewConfigurationHandler(svc configurationService) *ConfigurationHandler {
	return &ConfigurationHandler{service: svc}
}

// Get godoc
// @Summary Read application settings
// @Tags Configuration
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /configuration [get]
func (h *ConfigurationHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg)
}

// Update godoc
// @Summary Update application settings
// @Tags Configuration
// @Accept json
// @Produce json
// @Param payload body dto.UpdateConfigurationRequest true "Settings payload"
// @Success 200 {object} response.Envelope
// @Router /configuration [put]
func (h *ConfigurationHandler) Update(c *gin.Context) {
	var req dto.UpdateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	cfg, err := h.service.Update(c.Request.Context(), req, middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg)
}
