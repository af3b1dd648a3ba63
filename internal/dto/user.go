package dto

import "github.com/workroster/workroster-api/internal/models"

// CreateUserRequest payload for provisioning a new account.
type CreateUserRequest struct {
	Username string          `json:"username" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	FullName string          `json:"full_name" validate:"required"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required"`
	Service  string          `json:"service" validate:"required"`
}
