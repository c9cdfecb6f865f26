package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/domain"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
	"simplecrm/internal/store"
)

// Handler handles notification HTTP requests
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.PATCH("/read-all", h.MarkAllRead)
		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.Delete)
		notifications.GET("/settings", h.GetSettings)
		notifications.PUT("/settings", h.UpdateSettings)
	}
}

type SettingsRequest struct {
	Email           bool   `json:"email"`
	Push            bool   `json:"push"`
	LeadAssignments bool   `json:"leadAssignments"`
	DealUpdates     bool   `json:"dealUpdates"`
	DailyDigest     bool   `json:"dailyDigest"`
	Frequency       string `json:"frequency" validate:"omitempty,oneof=Real-time Hourly Daily"`
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Notifications())
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.store.MarkNotificationRead(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.store.MarkAllNotificationsRead(); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteNotification(c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notification deleted"})
}

func (h *Handler) GetSettings(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.NotificationSettings())
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	settings := domain.NotificationSettings{
		Email:           req.Email,
		Push:            req.Push,
		LeadAssignments: req.LeadAssignments,
		DealUpdates:     req.DealUpdates,
		DailyDigest:     req.DailyDigest,
		Frequency:       req.Frequency,
	}
	if settings.Frequency == "" {
		settings.Frequency = "Real-time"
	}
	if err := h.store.UpdateNotificationSettings(settings); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}
