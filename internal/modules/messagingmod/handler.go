package messagingmod

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/messaging"
	"simplecrm/internal/middleware"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
	"simplecrm/internal/store"
)

// Handler builds outbound wa.me and mailto links. The server never
// sends messages itself; it only prepares links the client opens.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/messaging")
	{
		grp.GET("/templates", h.ListTemplates)
		grp.POST("/whatsapp-link", h.WhatsAppLink)
		grp.POST("/mailto", h.Mailto)
	}
}

// ListTemplates handles GET /messaging/templates
func (h *Handler) ListTemplates(c *gin.Context) {
	response.Success(c, http.StatusOK, messaging.Templates)
}

// WhatsAppLink handles POST /messaging/whatsapp-link. The message is
// either given verbatim or rendered from a template, and sends against
// a known lead or customer are recorded on its timeline.
func (h *Handler) WhatsAppLink(c *gin.Context) {
	var req WhatsAppLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	actor := middleware.CurrentUser(c)
	message := req.Message
	if req.TemplateID != "" {
		tpl, ok := messaging.TemplateByID(req.TemplateID)
		if !ok {
			response.CustomError(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "Template not found")
			return
		}
		message = messaging.Substitute(tpl.Content, messaging.SubstituteParams{
			Name:     req.Name,
			Company:  req.Company,
			YourName: actor.Name,
			Value:    req.Value,
		})
	}
	if message == "" {
		response.CustomError(c, http.StatusBadRequest, "EMPTY_MESSAGE", "Provide a message or a templateId")
		return
	}

	if req.EntityID != "" {
		isLead := req.EntityType != "Customer"
		if err := h.store.LogWhatsAppSent(actor, req.EntityID, isLead, message); err != nil {
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
			return
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"url":     messaging.WhatsAppURL(req.Phone, message),
		"message": message,
	})
}

// Mailto handles POST /messaging/mailto
func (h *Handler) Mailto(c *gin.Context) {
	var req MailtoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"url": messaging.MailtoURL(req.To, req.Subject, req.CC, req.Body),
	})
}
