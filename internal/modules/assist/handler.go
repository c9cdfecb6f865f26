package assist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/ai"
	"simplecrm/internal/domain"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
	"simplecrm/internal/store"
)

// Handler exposes the AI assistant. Every endpoint answers 200 with a
// fallback payload when no API key is configured, so the client never
// has to branch on assistant availability.
type Handler struct {
	store  *store.Store
	assist *ai.Assist
}

func NewHandler(st *store.Store, assist *ai.Assist) *Handler {
	return &Handler{store: st, assist: assist}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/assist")
	{
		grp.POST("/leads/:id/score", h.ScoreLead)
		grp.GET("/leads/:id/summary", h.SummarizeLead)
		grp.GET("/leads/:id/insights", h.StrategicInsights)
		grp.POST("/leads/:id/enrich", h.EnrichLead)
		grp.POST("/leads/duplicates", h.DetectDuplicates)
		grp.POST("/leads/extract", h.ExtractLead)
		grp.POST("/email/generate", h.GenerateEmail)
		grp.POST("/email/improve", h.ImproveEmail)
		grp.POST("/email/grammar", h.CheckGrammar)
		grp.POST("/email/translate", h.Translate)
		grp.POST("/notes/analyze", h.AnalyzeNote)
		grp.POST("/activities/summarize", h.SummarizeActivities)
	}
}

// ScoreLead scores a lead and stores the result on its AI metadata.
func (h *Handler) ScoreLead(c *gin.Context) {
	id := c.Param("id")
	lead, ok := h.store.LeadByID(id)
	if !ok {
		response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		return
	}

	history := h.store.ActivitiesFor(domain.EntityLead, id)
	score := h.assist.ScoreLead(c.Request.Context(), lead, history)
	if score == nil {
		response.Success(c, http.StatusOK, gin.H{"score": nil})
		return
	}

	if _, err := h.store.UpdateLeadAIMetadata(id, domain.LeadAIMetadata{
		Score:      score.Score,
		ScoreLabel: score.Label,
	}); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"score": score})
}

func (h *Handler) SummarizeLead(c *gin.Context) {
	id := c.Param("id")
	lead, ok := h.store.LeadByID(id)
	if !ok {
		response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		return
	}

	history := h.store.ActivitiesFor(domain.EntityLead, id)
	summary := h.assist.SummarizeLead(c.Request.Context(), lead, history)
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) StrategicInsights(c *gin.Context) {
	id := c.Param("id")
	lead, ok := h.store.LeadByID(id)
	if !ok {
		response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		return
	}

	history := h.store.ActivitiesFor(domain.EntityLead, id)
	insights := h.assist.StrategicInsights(c.Request.Context(), lead, history)
	response.Success(c, http.StatusOK, gin.H{"insights": insights})
}

func (h *Handler) EnrichLead(c *gin.Context) {
	id := c.Param("id")
	lead, ok := h.store.LeadByID(id)
	if !ok {
		response.CustomError(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		return
	}

	enrichment := h.assist.EnrichCompany(c.Request.Context(), lead.Company)
	if enrichment == nil {
		response.Success(c, http.StatusOK, gin.H{"enrichment": nil})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrichment": enrichment})
}

func (h *Handler) DetectDuplicates(c *gin.Context) {
	var req DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	ids := h.assist.DetectDuplicates(c.Request.Context(), domain.Lead{
		Name:    req.Name,
		Phone:   req.Phone,
		Company: req.Company,
	}, h.store.Leads())
	if ids == nil {
		ids = []string{}
	}
	response.Success(c, http.StatusOK, gin.H{"duplicateIds": ids})
}

func (h *Handler) ExtractLead(c *gin.Context) {
	var req ExtractLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	statuses := []string{
		string(domain.LeadStatusNew),
		string(domain.LeadStatusContacted),
		string(domain.LeadStatusQualified),
		string(domain.LeadStatusConverted),
		string(domain.LeadStatusNotInterested),
		string(domain.LeadStatusLost),
	}
	extracted := h.assist.ExtractLead(c.Request.Context(), req.Text, statuses, h.store.LeadSources())
	response.Success(c, http.StatusOK, gin.H{"lead": extracted})
}

func (h *Handler) GenerateEmail(c *gin.Context) {
	var req GenerateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	draft := h.assist.GenerateEmail(c.Request.Context(), req.Intent, req.Tone, req.Points, ai.EmailContext{
		Name:     req.Name,
		Company:  req.Company,
		UserName: req.YourName,
	})
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) ImproveEmail(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	improved := h.assist.ImproveEmail(c.Request.Context(), req.Text)
	response.Success(c, http.StatusOK, gin.H{"text": improved})
}

func (h *Handler) CheckGrammar(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	result := h.assist.CheckGrammar(c.Request.Context(), req.Text)
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

func (h *Handler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	translated := h.assist.Translate(c.Request.Context(), req.Text, req.TargetLang)
	response.Success(c, http.StatusOK, gin.H{"text": translated})
}

func (h *Handler) AnalyzeNote(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	analysis := h.assist.AnalyzeNote(c.Request.Context(), req.Text)
	response.Success(c, http.StatusOK, gin.H{"analysis": analysis})
}

// SummarizeActivities condenses one record's timeline, or the whole
// feed when no entity filter is given.
func (h *Handler) SummarizeActivities(c *gin.Context) {
	entityID := c.Query("entityId")
	entityType := c.Query("entityType")

	var activities []domain.Activity
	if entityID != "" && entityType != "" {
		activities = h.store.ActivitiesFor(domain.EntityType(entityType), entityID)
	} else {
		activities = h.store.Activities()
	}

	summary := h.assist.SummarizeActivities(c.Request.Context(), activities)
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
