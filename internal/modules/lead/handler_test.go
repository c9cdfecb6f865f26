package lead

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
	"simplecrm/internal/middleware"
	jwtsvc "simplecrm/internal/pkg/jwt"
	"simplecrm/internal/storage"
	"simplecrm/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *store.Store, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(storage.NewMemory())
	j := jwtsvc.New("test-secret", time.Hour)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.Auth(j))
	NewHandler(st).RegisterRoutes(protected)
	return router, st, j
}

func doJSON(t *testing.T, router *gin.Engine, j *jwtsvc.Service, role, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	token, err := j.GenerateToken("user@business.com", "Test User", role)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateLeadDefaults(t *testing.T) {
	router, _, j := setupRouter(t)

	w, env := doJSON(t, router, j, "Owner", http.MethodPost, "/api/v1/leads", gin.H{
		"name":    "Arjun Mehta",
		"company": "Tech India Solutions",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var lead domain.Lead
	require.NoError(t, json.Unmarshal(env.Data, &lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, domain.PriorityMedium, lead.Priority)
	assert.Equal(t, "Other", lead.Source)
	assert.Equal(t, "user@business.com", lead.AssignedToID)
}

func TestCreateLeadValidation(t *testing.T) {
	router, _, j := setupRouter(t)

	w, env := doJSON(t, router, j, "Owner", http.MethodPost, "/api/v1/leads", gin.H{"name": "No Company"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestGetLeadNotFound(t *testing.T) {
	router, _, j := setupRouter(t)

	w, env := doJSON(t, router, j, "Owner", http.MethodGet, "/api/v1/leads/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LEAD_NOT_FOUND", env.Error.Code)
}

func TestUpdateStatus(t *testing.T) {
	router, st, j := setupRouter(t)
	seeded, err := st.AddLead(domain.SessionUser{}, domain.Lead{Name: "A", Company: "B", Status: domain.LeadStatusNew})
	require.NoError(t, err)

	w, env := doJSON(t, router, j, "Owner", http.MethodPatch, "/api/v1/leads/"+seeded.ID+"/status", gin.H{"status": "Qualified"})
	require.Equal(t, http.StatusOK, w.Code)

	var lead domain.Lead
	require.NoError(t, json.Unmarshal(env.Data, &lead))
	assert.Equal(t, domain.LeadStatusQualified, lead.Status)
}

func TestDeleteLeadForbiddenForSales(t *testing.T) {
	router, st, j := setupRouter(t)
	seeded, err := st.AddLead(domain.SessionUser{}, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)

	w, env := doJSON(t, router, j, "Sales", http.MethodDelete, "/api/v1/leads/"+seeded.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestConvertLeadOnce(t *testing.T) {
	router, st, j := setupRouter(t)
	seeded, err := st.AddLead(domain.SessionUser{}, domain.Lead{Name: "A", Company: "B", Value: 5000})
	require.NoError(t, err)

	w, env := doJSON(t, router, j, "Owner", http.MethodPost, "/api/v1/leads/"+seeded.ID+"/convert", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var customer domain.Customer
	require.NoError(t, json.Unmarshal(env.Data, &customer))
	assert.Equal(t, seeded.ID, customer.LeadID)

	// second conversion is refused
	w, env = doJSON(t, router, j, "Owner", http.MethodPost, "/api/v1/leads/"+seeded.ID+"/convert", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ALREADY_CONVERTED", env.Error.Code)
}

func TestBulkStatus(t *testing.T) {
	router, st, j := setupRouter(t)
	l1, err := st.AddLead(domain.SessionUser{}, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)
	l2, err := st.AddLead(domain.SessionUser{}, domain.Lead{Name: "C", Company: "D"})
	require.NoError(t, err)

	w, _ := doJSON(t, router, j, "Owner", http.MethodPost, "/api/v1/leads/bulk/status", gin.H{
		"ids":    []string{l1.ID, l2.ID},
		"status": "Contacted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, id := range []string{l1.ID, l2.ID} {
		got, ok := st.LeadByID(id)
		require.True(t, ok)
		assert.Equal(t, domain.LeadStatusContacted, got.Status)
	}
}

func TestListLeads(t *testing.T) {
	router, st, j := setupRouter(t)
	_, err := st.AddLead(domain.SessionUser{}, domain.Lead{Name: "A", Company: "B"})
	require.NoError(t, err)

	w, env := doJSON(t, router, j, "Sales", http.MethodGet, "/api/v1/leads", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var leads []domain.Lead
	require.NoError(t, json.Unmarshal(env.Data, &leads))
	assert.Len(t, leads, 1)
}
