package searchmod

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/pkg/response"
	"simplecrm/internal/search"
	"simplecrm/internal/store"
)

// Handler serves the global quick search
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.Global)
}

// Global handles GET /search?q=...
func (h *Handler) Global(c *gin.Context) {
	q := c.Query("q")
	results := search.Global(q, h.store.Leads(), h.store.Customers(), h.store.Deals())
	response.Success(c, http.StatusOK, results)
}
