// Package dataio handles spreadsheet import and export for leads,
// customers, deals and the activity log. Workbooks are produced with
// excelize; CSV falls back to the standard encoding.
package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"simplecrm/internal/domain"
)

// Sheet is one tab of an export workbook.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

const exportDateLayout = "02 Jan 2006, 3:04 PM"

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportDateLayout)
}

// LeadSheet flattens leads for export. Internal IDs are dropped and
// timestamps rendered human-readable; money stays numeric so the
// spreadsheet can compute over it.
func LeadSheet(leads []domain.Lead) Sheet {
	s := Sheet{
		Name: "Leads",
		Headers: []string{
			"Name", "Company", "Email", "Phone", "City", "Status", "Source",
			"Priority", "Value", "Notes", "Assigned To", "Last Contact", "Created At",
		},
	}
	for _, l := range leads {
		s.Rows = append(s.Rows, []any{
			l.Name, l.Company, l.Email, l.Phone, l.City, string(l.Status), l.Source,
			string(l.Priority), l.Value, l.Notes, l.AssignedTo, fmtDate(l.LastContact), fmtDate(l.CreatedAt),
		})
	}
	return s
}

func CustomerSheet(customers []domain.Customer) Sheet {
	s := Sheet{
		Name: "Customers",
		Headers: []string{
			"Name", "Company", "Email", "Phone", "City", "Loyalty Status",
			"Total Revenue", "Active Deals", "Preferred Language", "Payment Status",
			"Tags", "Customer Since",
		},
	}
	for _, c := range customers {
		tags, _ := json.Marshal(c.Tags)
		s.Rows = append(s.Rows, []any{
			c.Name, c.Company, c.Email, c.Phone, c.City, string(c.LoyaltyStatus),
			c.TotalRevenue, c.ActiveDealsCount, c.PreferredLanguage, string(c.PaymentStatus),
			string(tags), fmtDate(c.CustomerSince),
		})
	}
	return s
}

func DealSheet(deals []domain.Deal) Sheet {
	s := Sheet{
		Name: "Deals",
		Headers: []string{
			"Title", "Customer", "Value", "Stage", "Priority", "Probability",
			"Expected Close", "Actual Close", "Assigned To", "Created At",
		},
	}
	for _, d := range deals {
		actual := ""
		if d.ActualClose != nil {
			actual = fmtDate(*d.ActualClose)
		}
		s.Rows = append(s.Rows, []any{
			d.Title, d.CustomerName, d.Value, d.Stage, string(d.Priority), d.Probability,
			d.ExpectedClose, actual, d.AssignedTo, fmtDate(d.CreatedAt),
		})
	}
	return s
}

func ActivitySheet(activities []domain.Activity) Sheet {
	s := Sheet{
		Name:    "Activity",
		Headers: []string{"Entity Type", "Type", "Content", "User", "Timestamp"},
	}
	for _, a := range activities {
		s.Rows = append(s.Rows, []any{
			string(a.EntityType), string(a.Type), a.Content, a.User, fmtDate(a.Timestamp),
		})
	}
	return s
}

// WriteXLSX renders the sheets as a multi-tab workbook.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("add sheet %s: %w", name, err)
			}
		}
		header := make([]any, len(sheet.Headers))
		for j, h := range sheet.Headers {
			header[j] = h
		}
		if err := writeRow(f, name, 1, header); err != nil {
			return err
		}
		for r, row := range sheet.Rows {
			if err := writeRow(f, name, r+2, row); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// WriteCSV renders a single sheet as CSV.
func WriteCSV(w io.Writer, sheet Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sheet.Headers); err != nil {
		return err
	}
	for _, row := range sheet.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
