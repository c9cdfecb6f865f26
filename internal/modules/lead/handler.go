package lead

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

// Handler handles lead HTTP requests
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	leads := r.Group("/leads")
	{
		leads.GET("", h.List)
		leads.POST("", h.Create)
		leads.GET("/:id", h.Get)
		leads.PUT("/:id", h.Update)
		leads.DELETE("/:id", h.Delete)
		leads.PATCH("/:id/status", h.UpdateStatus)
		leads.POST("/:id/convert", h.Convert)
		leads.PATCH("/:id/ai", h.UpdateAIMetadata)
		leads.POST("/bulk/delete", h.BulkDelete)
		leads.POST("/bulk/status", h.BulkStatus)
		leads.POST("/bulk/assign", h.BulkAssign)
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Leads())
}

func (h *Handler) Get(c *gin.Context) {
	lead, ok := h.store.LeadByID(c.Param("id"))
	if !ok {
		response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	lead, err := h.store.AddLead(middleware.CurrentUser(c), req.toDomain())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, lead)
}

func (h *Handler) Update(c *gin.Context) {
	var lead domain.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	lead.ID = c.Param("id")
	if errs := validator.Validate(&lead); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	updated, err := h.store.UpdateLead(lead)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	lead, err := h.store.UpdateLeadStatus(middleware.CurrentUser(c), c.Param("id"), domain.LeadStatus(req.Status))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteLead(middleware.CurrentUser(c), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrPermissionDenied) {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Sales users cannot delete leads")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Lead deleted"})
}

// Convert creates a customer from the lead. A lead already marked
// Converted is refused here even though the store itself allows it.
func (h *Handler) Convert(c *gin.Context) {
	id := c.Param("id")
	lead, ok := h.store.LeadByID(id)
	if !ok {
		response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	if lead.IsConverted() {
		response.CustomError(c, http.StatusConflict, "ALREADY_CONVERTED", "Lead already converted")
		return
	}

	customer, err := h.store.ConvertLeadToCustomer(middleware.CurrentUser(c), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, customer)
}

func (h *Handler) UpdateAIMetadata(c *gin.Context) {
	var req AIMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	lead, err := h.store.UpdateLeadAIMetadata(c.Param("id"), domain.LeadAIMetadata{
		Score:       req.Score,
		ScoreLabel:  req.ScoreLabel,
		Summary:     req.Summary,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Website:     req.Website,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) BulkDelete(c *gin.Context) {
	var req BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	if err := h.store.BulkDeleteLeads(middleware.CurrentUser(c), req.IDs); err != nil {
		if errors.Is(err, store.ErrPermissionDenied) {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Sales users cannot delete leads")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": len(req.IDs)})
}

func (h *Handler) BulkStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	if err := h.store.BulkUpdateLeadStatus(req.IDs, domain.LeadStatus(req.Status)); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": len(req.IDs)})
}

func (h *Handler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	name := req.UserName
	if name == "" {
		if u, ok := h.store.UserByEmail(req.UserID); ok {
			name = u.Name
		}
	}
	if err := h.store.BulkAssignLeads(req.IDs, req.UserID, name); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assigned": len(req.IDs)})
}
