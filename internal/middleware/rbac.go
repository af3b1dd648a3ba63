package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
	"github.com/workroster/workroster-api/pkg/response"
)

// SelfParam, when listed among the allowed roles, additionally admits the
// caller whose user ID matches the userId path parameter. Employees read
// their own schedule through it without holding a reviewer role.
const SelfParam = "SELF"

// RBAC gates a route on an allow-list of roles. The services re-check
// capabilities; this gate exists so unauthorized calls fail before binding.
func RBAC(allowed ...string) gin.HandlerFunc {
	allowSelf := false
	roles := make(map[models.UserRole]bool, len(allowed))
	for _, a := range allowed {
		if a == SelfParam {
			allowSelf = true
			continue
		}
		roles[models.UserRole(a)] = true
	}

	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if roles[claims.Role] {
			c.Next()
			return
		}
		if allowSelf && claims.UserID != "" && c.Param("userId") == claims.UserID {
			c.Next()
			return
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
