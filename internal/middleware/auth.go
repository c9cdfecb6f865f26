package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/domain"
	jwtsvc "simplecrm/internal/pkg/jwt"
	"simplecrm/internal/pkg/response"
)

const sessionUserKey = "session_user"

// Auth validates the Bearer token and puts the session user on the
// context for handlers and the role middleware.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set(sessionUserKey, domain.SessionUser{
			Email: claims.Email,
			Name:  claims.Name,
			Role:  domain.UserRole(claims.Role),
		})

		c.Next()
	}
}

// CurrentUser returns the authenticated user, or a zero SessionUser on
// unauthenticated routes.
func CurrentUser(c *gin.Context) domain.SessionUser {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return domain.SessionUser{}
	}
	u, _ := v.(domain.SessionUser)
	return u
}
