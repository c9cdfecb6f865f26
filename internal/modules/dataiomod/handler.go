package dataiomod

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/dataio"
	"simplecrm/internal/domain"
	"simplecrm/internal/middleware"
	"simplecrm/internal/pkg/response"
	"simplecrm/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves spreadsheet export, import and the import templates.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/data")
	{
		grp.GET("/export/xlsx", h.ExportXLSX)
		grp.GET("/export/csv", h.ExportCSV)
		grp.GET("/import/template/:kind", h.ImportTemplate)
		grp.POST("/import/:kind", h.Import)
	}
}

// ExportXLSX handles GET /data/export/xlsx: one workbook with a tab
// per entity.
func (h *Handler) ExportXLSX(c *gin.Context) {
	name := fmt.Sprintf("crm-export-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", xlsxContentType)

	err := dataio.WriteXLSX(c.Writer,
		dataio.LeadSheet(h.store.Leads()),
		dataio.CustomerSheet(h.store.Customers()),
		dataio.DealSheet(h.store.Deals()),
		dataio.ActivitySheet(h.store.Activities()),
	)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "EXPORT_FAILED", err)
	}
}

// ExportCSV handles GET /data/export/csv?entity=leads
func (h *Handler) ExportCSV(c *gin.Context) {
	entity := c.DefaultQuery("entity", "leads")

	var sheet dataio.Sheet
	switch entity {
	case "leads":
		sheet = dataio.LeadSheet(h.store.Leads())
	case "customers":
		sheet = dataio.CustomerSheet(h.store.Customers())
	case "deals":
		sheet = dataio.DealSheet(h.store.Deals())
	case "activities":
		sheet = dataio.ActivitySheet(h.store.Activities())
	default:
		response.CustomError(c, http.StatusBadRequest, "INVALID_ENTITY", "Entity must be one of: leads, customers, deals, activities")
		return
	}

	name := fmt.Sprintf("crm-%s-%s.csv", entity, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", "text/csv")

	if err := dataio.WriteCSV(c.Writer, sheet); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "EXPORT_FAILED", err)
	}
}

// ImportTemplate handles GET /data/import/template/:kind
func (h *Handler) ImportTemplate(c *gin.Context) {
	kind, ok := importKind(c.Param("kind"))
	if !ok {
		response.CustomError(c, http.StatusBadRequest, "INVALID_KIND", "Kind must be one of: leads, customers, deals")
		return
	}

	data, err := dataio.Template(kind)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "EXPORT_FAILED", err)
		return
	}
	name := fmt.Sprintf("%s-import-template.xlsx", strings.ToLower(string(kind)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Import handles POST /data/import/:kind with a multipart "file". Rows
// whose phone or email matches an existing record are skipped unless
// duplicates=import is passed.
func (h *Handler) Import(c *gin.Context) {
	kind, ok := importKind(c.Param("kind"))
	if !ok {
		response.CustomError(c, http.StatusBadRequest, "INVALID_KIND", "Kind must be one of: leads, customers, deals")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.CustomError(c, http.StatusBadRequest, "FILE_REQUIRED", "Attach the spreadsheet as the \"file\" field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.CustomError(c, http.StatusBadRequest, "FILE_UNREADABLE", err)
		return
	}
	defer file.Close()

	rows, headers, err := dataio.Parse(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, dataio.ErrEmptyFile) {
			response.CustomError(c, http.StatusBadRequest, "EMPTY_FILE", "The file has no data rows")
			return
		}
		response.CustomError(c, http.StatusBadRequest, "PARSE_FAILED", err)
		return
	}

	mapping := dataio.AutoMap(headers, kind)
	if len(mapping) == 0 {
		response.CustomError(c, http.StatusBadRequest, "NO_COLUMNS_MATCHED", gin.H{
			"message":      "No columns could be matched automatically",
			"targetFields": dataio.TargetFields(kind),
		})
		return
	}

	skipDuplicates := c.DefaultQuery("duplicates", "skip") != "import"
	actor := middleware.CurrentUser(c)

	var imported, skipped, failed int
	for _, row := range rows {
		switch kind {
		case dataio.ImportLeads:
			lead, err := dataio.LeadFromRow(row, mapping)
			if err != nil {
				failed++
				continue
			}
			if skipDuplicates && h.leadExists(lead) {
				skipped++
				continue
			}
			if _, err := h.store.AddLead(actor, lead); err != nil {
				failed++
				continue
			}
		case dataio.ImportCustomers:
			customer, err := dataio.CustomerFromRow(row, mapping)
			if err != nil {
				failed++
				continue
			}
			if skipDuplicates && h.customerExists(customer) {
				skipped++
				continue
			}
			if _, err := h.store.AddCustomer(customer); err != nil {
				failed++
				continue
			}
		case dataio.ImportDeals:
			deal, err := dataio.DealFromRow(row, mapping)
			if err != nil {
				failed++
				continue
			}
			if _, err := h.store.AddDeal(deal); err != nil {
				failed++
				continue
			}
		}
		imported++
	}

	response.Success(c, http.StatusOK, gin.H{
		"imported": imported,
		"skipped":  skipped,
		"failed":   failed,
	})
}

func importKind(param string) (dataio.ImportKind, bool) {
	switch strings.ToLower(param) {
	case "leads":
		return dataio.ImportLeads, true
	case "customers":
		return dataio.ImportCustomers, true
	case "deals":
		return dataio.ImportDeals, true
	default:
		return "", false
	}
}

func (h *Handler) leadExists(lead domain.Lead) bool {
	for _, l := range h.store.Leads() {
		if samePhone(l.Phone, lead.Phone) || sameEmail(l.Email, lead.Email) {
			return true
		}
	}
	return false
}

func (h *Handler) customerExists(customer domain.Customer) bool {
	for _, c := range h.store.Customers() {
		if samePhone(c.Phone, customer.Phone) || sameEmail(c.Email, customer.Email) {
			return true
		}
	}
	return false
}

func samePhone(a, b string) bool {
	da, db := digitsOnly(a), digitsOnly(b)
	if len(da) < 10 || len(db) < 10 {
		return false
	}
	// Compare national digits so +91 variants still collide.
	return da[len(da)-10:] == db[len(db)-10:]
}

func sameEmail(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
