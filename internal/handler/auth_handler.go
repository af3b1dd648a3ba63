package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
	"github.com/workroster/workroster-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, claims *models.JWTClaims) (*models.UserInfo, error)
	InitAdmin(ctx context.Context) (*models.User, bool, error)
}

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	service authService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	info, err := h.service.Me(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

// InitAdmin godoc
// @Summary Create the bootstrap admin account when none exists
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /init-admin [post]
func (h *AuthHandler) InitAdmin(c *gin.Context) {
	admin, created, err := h.service.InitAdmin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.JSON(c, http.StatusOK, gin.H{"message": "admin account already exists"})
		return
	}
	response.Created(c, gin.H{"message": "admin account created", "username": admin.Username})
}
