package reportmod

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/ai"
	"simplecrm/internal/domain"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/report"
	"simplecrm/internal/store"
)

// Handler serves the analytics screen
type Handler struct {
	store  *store.Store
	assist *ai.Assist
}

func NewHandler(st *store.Store, assist *ai.Assist) *Handler {
	return &Handler{store: st, assist: assist}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("", h.Build)
		reports.GET("/insights", h.Insights)
	}
}

// Build handles GET /reports?range=Month
func (h *Handler) Build(c *gin.Context) {
	rng := report.Range(c.DefaultQuery("range", string(report.RangeMonth)))
	switch rng {
	case report.RangeWeek, report.RangeMonth, report.RangeQuarter, report.RangeFiscal:
	default:
		response.CustomError(c, http.StatusBadRequest, "INVALID_RANGE", "Range must be one of: Week, Month, Quarter, Fiscal")
		return
	}

	out := report.Build(rng, h.store.Leads(), h.store.Customers(), h.store.Deals(), h.store.Activities())
	response.Success(c, http.StatusOK, out)
}

// Insights handles GET /reports/insights: three headline observations
// from the assistant, or a canned set without an API key.
func (h *Handler) Insights(c *gin.Context) {
	leads := h.store.Leads()
	deals := h.store.Deals()

	var won, lost float64
	for _, d := range deals {
		switch d.Stage {
		case domain.StageWon:
			won += d.Value
		case domain.StageLost:
			lost += d.Value
		}
	}

	seen := make(map[string]bool)
	var sources []string
	for _, l := range leads {
		if !seen[l.Source] {
			seen[l.Source] = true
			sources = append(sources, l.Source)
		}
		if len(sources) == 3 {
			break
		}
	}

	insights := h.assist.ReportInsights(c.Request.Context(), ai.ReportMetrics{
		LeadsCount:     len(leads),
		CustomersCount: len(h.store.Customers()),
		WonDealsValue:  won,
		LostDealsValue: lost,
		TopSources:     sources,
	})
	response.Success(c, http.StatusOK, gin.H{"insights": insights})
}
