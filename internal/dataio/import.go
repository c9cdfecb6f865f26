package dataio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"simplecrm/internal/domain"
)

var ErrEmptyFile = errors.New("dataio: file has no data rows")

// ImportKind selects which entity an uploaded sheet maps to.
type ImportKind string

const (
	ImportLeads     ImportKind = "Leads"
	ImportCustomers ImportKind = "Customers"
	ImportDeals     ImportKind = "Deals"
)

// TargetFields lists the entity fields an uploaded column can map to,
// in the order they are presented for review.
func TargetFields(kind ImportKind) []string {
	switch kind {
	case ImportCustomers:
		return []string{"name", "company", "email", "phone", "city", "totalRevenue", "loyaltyStatus", "preferredLanguage"}
	case ImportDeals:
		return []string{"title", "customerName", "value", "stage", "priority", "expectedClose"}
	default:
		return []string{"name", "company", "email", "phone", "city", "value", "status", "source", "priority", "notes"}
	}
}

// Row is one parsed spreadsheet row keyed by the original header text.
type Row map[string]string

// Parse reads the first sheet of an xlsx workbook, or a CSV stream,
// into header-keyed rows. The format is picked by filename extension.
func Parse(r io.Reader, filename string) ([]Row, []string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return parseCSV(r)
	}
	return parseXLSX(r)
}

func parseXLSX(r io.Reader) ([]Row, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyFile
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	return rowsFromRecords(records)
}

func parseCSV(r io.Reader) ([]Row, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	return rowsFromRecords(records)
}

func rowsFromRecords(records [][]string) ([]Row, []string, error) {
	if len(records) < 2 {
		return nil, nil, ErrEmptyFile
	}
	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, h := range headers {
			if i < len(rec) && rec[i] != "" {
				row[h] = rec[i]
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return rows, headers, nil
}

// AutoMap matches uploaded headers to target fields: exact
// case-insensitive first, then with whitespace stripped, so "Customer
// Name" lands on customerName.
func AutoMap(headers []string, kind ImportKind) map[string]string {
	mapping := make(map[string]string)
	for _, h := range headers {
		lower := strings.ToLower(h)
		squeezed := strings.ReplaceAll(lower, " ", "")
		for _, f := range TargetFields(kind) {
			fl := strings.ToLower(f)
			if lower == fl || squeezed == fl {
				mapping[h] = f
				break
			}
		}
	}
	return mapping
}

func (r Row) mapped(mapping map[string]string) map[string]string {
	out := make(map[string]string)
	for col, field := range mapping {
		if v, ok := r[col]; ok {
			out[field] = v
		}
	}
	return out
}

func numeric(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func indianPhone(s string) string {
	if s == "" {
		return "+91 "
	}
	if strings.HasPrefix(s, "+91") {
		return s
	}
	return "+91 " + digitsOnly(s)
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

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// LeadFromRow builds an importable lead. Rows without both a name and
// a company are rejected.
func LeadFromRow(r Row, mapping map[string]string) (domain.Lead, error) {
	m := r.mapped(mapping)
	if m["name"] == "" || m["company"] == "" {
		return domain.Lead{}, fmt.Errorf("lead row needs name and company")
	}
	return domain.Lead{
		Name:         m["name"],
		Company:      m["company"],
		Email:        m["email"],
		Phone:        indianPhone(m["phone"]),
		City:         orDefault(m["city"], "Unknown"),
		Value:        numeric(m["value"]),
		Status:       domain.LeadStatus(orDefault(m["status"], string(domain.LeadStatusNew))),
		Source:       orDefault(m["source"], "Other"),
		Priority:     domain.Priority(orDefault(m["priority"], string(domain.PriorityMedium))),
		Notes:        m["notes"],
		AssignedToID: "owner@business.com",
	}, nil
}

func CustomerFromRow(r Row, mapping map[string]string) (domain.Customer, error) {
	m := r.mapped(mapping)
	if m["name"] == "" {
		return domain.Customer{}, fmt.Errorf("customer row needs a name")
	}
	return domain.Customer{
		Name:                 m["name"],
		Company:              m["company"],
		Email:                m["email"],
		Phone:                m["phone"],
		City:                 m["city"],
		CustomerSince:        time.Now(),
		LoyaltyStatus:        domain.LoyaltyStatus(orDefault(m["loyaltyStatus"], string(domain.LoyaltyNew))),
		TotalRevenue:         numeric(m["totalRevenue"]),
		PreferredLanguage:    orDefault(m["preferredLanguage"], "English"),
		PreferredContactTime: "10 AM - 6 PM",
		Tags:                 []string{"Imported"},
		AssignedToID:         "owner@business.com",
	}, nil
}

func DealFromRow(r Row, mapping map[string]string) (domain.Deal, error) {
	m := r.mapped(mapping)
	expected := m["expectedClose"]
	if expected == "" {
		expected = time.Now().Format("2006-01-02")
	}
	return domain.Deal{
		Title:         orDefault(m["title"], "Untitled Deal"),
		CustomerID:    "manual",
		CustomerName:  orDefault(m["customerName"], "Walk-in"),
		Value:         numeric(m["value"]),
		Stage:         orDefault(m["stage"], domain.StageDiscovery),
		Priority:      domain.Priority(orDefault(m["priority"], string(domain.PriorityMedium))),
		Probability:   50,
		ExpectedClose: expected,
		AssignedToID:  "owner@business.com",
	}, nil
}

// Template produces the sample workbook users download before
// importing, one row showing the expected columns.
func Template(kind ImportKind) ([]byte, error) {
	var sheet Sheet
	switch kind {
	case ImportCustomers:
		sheet = Sheet{
			Name:    "Template",
			Headers: []string{"Name", "Company", "Email", "Phone", "City", "Loyalty Status", "Total Revenue", "Preferred Language"},
			Rows: [][]any{{
				"Sneha Patil", "Patil Organics", "sneha@patil.in", "9123456789", "Pune", "VIP", 150000, "Hindi",
			}},
		}
	case ImportDeals:
		sheet = Sheet{
			Name:    "Template",
			Headers: []string{"Title", "Customer Name", "Value", "Stage", "Priority", "Expected Close"},
			Rows: [][]any{{
				"Q1 Server Upgrade", "Global Corp", 200000, "Discovery", "High", "2024-12-31",
			}},
		}
	default:
		sheet = Sheet{
			Name:    "Template",
			Headers: []string{"Name", "Company", "Email", "Phone", "City", "Value", "Status", "Source", "Notes"},
			Rows: [][]any{{
				"Arjun Sharma", "Sharma Exports", "arjun@sharma.com", "9876543210", "Mumbai", 50000, "New", "Referral", "Interested in bulk orders.",
			}},
		}
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sheet); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
