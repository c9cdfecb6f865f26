package customer

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

// Handler handles customer HTTP requests
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.GET("", h.List)
		customers.POST("", h.Create)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Customers())
}

func (h *Handler) Get(c *gin.Context) {
	customer, ok := h.store.CustomerByID(c.Param("id"))
	if !ok {
		response.CustomError(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}
	response.Success(c, http.StatusOK, customer)
}

func (h *Handler) Create(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&customer); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	created, err := h.store.AddCustomer(customer)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	customer.ID = c.Param("id")
	if errs := validator.Validate(&customer); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	updated, err := h.store.UpdateCustomer(customer)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.CustomError(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteCustomer(middleware.CurrentUser(c), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrPermissionDenied) {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Sales users cannot delete customers")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Customer deleted"})
}
