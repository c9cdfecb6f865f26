package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/middleware"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.GetMe)
	}
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	user, token, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, ErrAccountLocked) {
			retryIn := time.Until(h.service.LockedUntil()).Round(time.Second)
			response.CustomError(c, http.StatusTooManyRequests, "ACCOUNT_LOCKED",
				gin.H{"message": "Too many failed attempts", "retryIn": retryIn.String()})
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		User: SessionResponse{
			Email:  user.Email,
			Name:   user.Name,
			Role:   string(user.Role),
			Avatar: user.Avatar,
		},
		Token: token,
	})
}

// GetMe handles GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.IsZero() {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	response.Success(c, http.StatusOK, SessionResponse{
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	})
}
