package activity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/domain"
	"simplecrm/internal/middleware"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
	"simplecrm/internal/store"
)

// Handler handles timeline HTTP requests
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	activities := r.Group("/activities")
	{
		activities.GET("", h.List)
		activities.POST("", h.Create)
		activities.DELETE("/:id", h.Delete)
	}
}

type CreateActivityRequest struct {
	EntityID   string   `json:"entityId" validate:"required"`
	EntityType string   `json:"entityType" validate:"required,oneof=Lead Customer Deal"`
	Type       string   `json:"type" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	IsPrivate  bool     `json:"isPrivate"`
	IsVoice    bool     `json:"isVoice"`
	Duration   string   `json:"duration"`
	Outcome    string   `json:"outcome"`
	Location   string   `json:"location"`
	Attendees  []string `json:"attendees"`
	Subject    string   `json:"subject"`
	To         string   `json:"to"`
}

// List returns the whole feed, or one record's timeline when entityId
// and entityType query params are set.
func (h *Handler) List(c *gin.Context) {
	entityID := c.Query("entityId")
	entityType := c.Query("entityType")
	if entityID != "" && entityType != "" {
		response.Success(c, http.StatusOK, h.store.ActivitiesFor(domain.EntityType(entityType), entityID))
		return
	}
	response.Success(c, http.StatusOK, h.store.Activities())
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	created, err := h.store.AddActivity(middleware.CurrentUser(c), domain.Activity{
		EntityID:   req.EntityID,
		EntityType: domain.EntityType(req.EntityType),
		Type:       domain.ActivityType(req.Type),
		Content:    req.Content,
		IsPrivate:  req.IsPrivate,
		IsVoice:    req.IsVoice,
		Duration:   req.Duration,
		Outcome:    req.Outcome,
		Location:   req.Location,
		Attendees:  req.Attendees,
		Subject:    req.Subject,
		To:         req.To,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.store.DeleteActivity(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "ACTIVITY_NOT_FOUND", "Activity not found")
			return
		}
		if errors.Is(err, store.ErrPermissionDenied) {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Only the author or an Owner can delete an activity")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Activity deleted"})
}
