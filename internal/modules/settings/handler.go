package settings

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"simplecrm/internal/domain"
	"simplecrm/internal/middleware"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/pkg/validator"
	"simplecrm/internal/store"
)

// Handler covers workspace settings: profile, business info, the
// configurable lead sources and deal stages, team management, the
// audit trail and the full reset.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/settings")
	{
		grp.GET("", h.Get)
		grp.PUT("/profile", h.UpdateProfile)
		grp.PUT("/business", h.UpdateBusiness)
		grp.PUT("/lead-sources", middleware.ManagerOrOwner(), h.SetLeadSources)
		grp.PUT("/deal-stages", middleware.ManagerOrOwner(), h.SetDealStages)
		grp.PUT("/language", h.SetLanguage)
	}

	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", middleware.OwnerOnly(), h.CreateUser)
		users.PUT("/:email", middleware.OwnerOnly(), h.UpdateUser)
		users.DELETE("/:email", middleware.OwnerOnly(), h.DeleteUser)
	}

	r.GET("/audit", middleware.ManagerOrOwner(), h.AuditTrail)
	r.POST("/reset", middleware.OwnerOnly(), h.Reset)
}

// Get handles GET /settings: the whole settings screen in one call.
func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"profile":     h.store.Profile(),
		"business":    h.store.Business(),
		"leadSources": h.store.LeadSources(),
		"dealStages":  h.store.DealStages(),
		"language":    h.store.Language(),
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	profile := domain.UserProfile{Name: req.Name, Phone: req.Phone}
	if err := h.store.UpdateProfile(profile); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) UpdateBusiness(c *gin.Context) {
	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	business := domain.BusinessInfo{Name: req.Name, Type: req.Type, Address: req.Address}
	if err := h.store.UpdateBusinessInfo(business); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, business)
}

func (h *Handler) SetLeadSources(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	if err := h.store.SetLeadSources(req.Items); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leadSources": h.store.LeadSources()})
}

func (h *Handler) SetDealStages(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	if err := h.store.SetDealStages(req.Items); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dealStages": h.store.DealStages()})
}

func (h *Handler) SetLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	if err := h.store.SetLanguage(req.Language); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"language": req.Language})
}

func (h *Handler) ListUsers(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Users())
}

// CreateUser handles POST /users. Only the Owner manages the team, and
// new members are always Manager or Sales.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	user, err := h.store.AddUser(domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         domain.UserRole(req.Role),
		Phone:        req.Phone,
		Avatar:       req.Avatar,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			response.CustomError(c, http.StatusConflict, "EMAIL_EXISTS", "A user with this email already exists")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	actor := middleware.CurrentUser(c)
	_ = h.store.AddAuditLog(actor, "User Added", fmt.Sprintf("Added %s (%s)", user.Name, user.Email))
	response.Success(c, http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	email := c.Param("email")
	existing, ok := h.store.UserByEmail(email)
	if !ok {
		response.CustomError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	// The Owner account keeps its role no matter what the update says.
	role := existing.Role
	if req.Role != "" && existing.Role != domain.RoleOwner {
		role = domain.UserRole(req.Role)
	}

	var hash string
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
			return
		}
		hash = string(hashed)
	}

	user, err := h.store.UpdateUser(email, domain.User{
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		Phone:        req.Phone,
		Avatar:       req.Avatar,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	email := c.Param("email")
	if err := h.store.DeleteUser(email); err != nil {
		switch {
		case errors.Is(err, store.ErrOwnerImmutable):
			response.CustomError(c, http.StatusForbidden, "OWNER_IMMUTABLE", "The Owner account cannot be removed")
		case errors.Is(err, store.ErrNotFound):
			response.CustomError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		default:
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		}
		return
	}

	actor := middleware.CurrentUser(c)
	_ = h.store.AddAuditLog(actor, "User Removed", fmt.Sprintf("Removed %s", email))
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *Handler) AuditTrail(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.AuditLogs())
}

// Reset handles POST /reset: wipes every snapshot. Owner only.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.store.Reset(); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "All data has been reset"})
}
