package calendarmod

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/calendar"
	"simplecrm/internal/domain"
	"simplecrm/internal/middleware"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
	"simplecrm/internal/store"
)

// Handler serves events, reminders and the month view
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	cal := r.Group("/calendar")
	{
		cal.GET("/month", h.MonthView)
		cal.GET("/holidays", h.Holidays)
	}

	reminders := r.Group("/reminders")
	{
		reminders.GET("", h.ListReminders)
		reminders.POST("", h.CreateReminder)
		reminders.PATCH("/:id/complete", h.CompleteReminder)
	}
}

func (h *Handler) ListEvents(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Events())
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&event); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	created, err := h.store.AddEvent(middleware.CurrentUser(c), event)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	event.ID = c.Param("id")
	if errs := validator.Validate(&event); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	updated, err := h.store.UpdateEvent(event)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.store.DeleteEvent(c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

// MonthView handles GET /calendar/month?year=2026&month=9. Defaults to
// the current month.
func (h *Handler) MonthView(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if y := c.Query("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil && v > 0 {
			year = v
		}
	}
	if m := c.Query("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			response.CustomError(c, http.StatusBadRequest, "INVALID_MONTH", "Month must be between 1 and 12")
			return
		}
		month = v
	}

	response.Success(c, http.StatusOK, calendar.MonthView(year, time.Month(month), h.store.Events()))
}

func (h *Handler) Holidays(c *gin.Context) {
	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil && v > 0 {
			year = v
		}
	}
	response.Success(c, http.StatusOK, calendar.IndianHolidays(year))
}

func (h *Handler) ListReminders(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Reminders())
}

func (h *Handler) CreateReminder(c *gin.Context) {
	var reminder domain.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&reminder); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	created, err := h.store.AddReminder(reminder)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) CompleteReminder(c *gin.Context) {
	reminder, err := h.store.CompleteReminder(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "REMINDER_NOT_FOUND", "Reminder not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, reminder)
}
