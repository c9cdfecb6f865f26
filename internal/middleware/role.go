package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/domain"
	"simplecrm/internal/pkg/response"
)

// RequireRole ensures the authenticated user holds one of the given roles
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user.IsZero() {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// OwnerOnly middleware requires the Owner role
func OwnerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleOwner)
}

// ManagerOrOwner allows the two managing roles
func ManagerOrOwner() gin.HandlerFunc {
	return RequireRole(domain.RoleOwner, domain.RoleManager)
}
