package deal

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

// Handler handles deal HTTP requests
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	deals := r.Group("/deals")
	{
		deals.GET("", h.List)
		deals.GET("/kanban", h.Kanban)
		deals.POST("", h.Create)
		deals.GET("/:id", h.Get)
		deals.PUT("/:id", h.Update)
		deals.DELETE("/:id", h.Delete)
		deals.PATCH("/:id/stage", h.UpdateStage)
	}
}

type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// KanbanColumn is one pipeline column with its aggregate value.
type KanbanColumn struct {
	Stage      string        `json:"stage"`
	Deals      []domain.Deal `json:"deals"`
	TotalValue float64       `json:"totalValue"`
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Deals())
}

// Kanban groups deals into the configured stage columns. Deals whose
// stage is not in the configured list are not shown on the board.
func (h *Handler) Kanban(c *gin.Context) {
	stages := h.store.DealStages()
	deals := h.store.Deals()

	columns := make([]KanbanColumn, 0, len(stages))
	for _, stage := range stages {
		col := KanbanColumn{Stage: stage, Deals: []domain.Deal{}}
		for _, d := range deals {
			if d.Stage == stage {
				col.Deals = append(col.Deals, d)
				col.TotalValue += d.Value
			}
		}
		columns = append(columns, col)
	}
	response.Success(c, http.StatusOK, columns)
}

func (h *Handler) Get(c *gin.Context) {
	deal, ok := h.store.DealByID(c.Param("id"))
	if !ok {
		response.CustomError(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	response.Success(c, http.StatusOK, deal)
}

func (h *Handler) Create(c *gin.Context) {
	var deal domain.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if deal.Stage == "" {
		deal.Stage = domain.StageDiscovery
	}
	if errs := validator.Validate(&deal); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	created, err := h.store.AddDeal(deal)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var deal domain.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	deal.ID = c.Param("id")
	if errs := validator.Validate(&deal); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	updated, err := h.store.UpdateDeal(deal)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) UpdateStage(c *gin.Context) {
	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	deal, err := h.store.UpdateDealStage(middleware.CurrentUser(c), c.Param("id"), req.Stage)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, deal)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteDeal(c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Deal deleted"})
}
