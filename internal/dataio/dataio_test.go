package dataio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
)

func TestAutoMapExactAndSqueezed(t *testing.T) {
	headers := []string{"Name", "COMPANY", "Customer Name", "Expected Close", "Unrelated"}

	leads := AutoMap(headers, ImportLeads)
	assert.Equal(t, "name", leads["Name"])
	assert.Equal(t, "company", leads["COMPANY"])
	assert.NotContains(t, leads, "Unrelated")

	deals := AutoMap(headers, ImportDeals)
	assert.Equal(t, "customerName", deals["Customer Name"])
	assert.Equal(t, "expectedClose", deals["Expected Close"])
}

func TestLeadFromRowRequiresNameAndCompany(t *testing.T) {
	mapping := map[string]string{"Name": "name", "Company": "company"}

	_, err := LeadFromRow(Row{"Name": "Arjun"}, mapping)
	assert.Error(t, err)

	lead, err := LeadFromRow(Row{"Name": "Arjun", "Company": "Sharma Exports"}, mapping)
	require.NoError(t, err)
	assert.Equal(t, "Arjun", lead.Name)
}

func TestLeadFromRowDefaults(t *testing.T) {
	mapping := map[string]string{"Name": "name", "Company": "company", "Phone": "phone"}
	lead, err := LeadFromRow(Row{"Name": "Arjun", "Company": "Exports", "Phone": "98765-43210"}, mapping)
	require.NoError(t, err)

	assert.Equal(t, "+91 9876543210", lead.Phone)
	assert.Equal(t, "Unknown", lead.City)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, "Other", lead.Source)
	assert.Equal(t, domain.PriorityMedium, lead.Priority)
	assert.Equal(t, "owner@business.com", lead.AssignedToID)
}

func TestCustomerFromRowDefaults(t *testing.T) {
	mapping := map[string]string{"Name": "name"}
	customer, err := CustomerFromRow(Row{"Name": "Sneha"}, mapping)
	require.NoError(t, err)

	assert.Equal(t, domain.LoyaltyNew, customer.LoyaltyStatus)
	assert.Equal(t, "English", customer.PreferredLanguage)
	assert.Equal(t, []string{"Imported"}, customer.Tags)

	_, err = CustomerFromRow(Row{}, mapping)
	assert.Error(t, err)
}

func TestDealFromRowDefaults(t *testing.T) {
	deal, err := DealFromRow(Row{}, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "Untitled Deal", deal.Title)
	assert.Equal(t, "Walk-in", deal.CustomerName)
	assert.Equal(t, domain.StageDiscovery, deal.Stage)
	assert.Equal(t, 50, deal.Probability)
	assert.NotEmpty(t, deal.ExpectedClose)
}

func TestParseCSV(t *testing.T) {
	csvData := "Name,Company,Value\nArjun,Exports,50000\n,,\nSneha,Organics,\n"

	rows, headers, err := Parse(strings.NewReader(csvData), "leads.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Company", "Value"}, headers)
	require.Len(t, rows, 2) // fully empty row dropped
	assert.Equal(t, "Arjun", rows[0]["Name"])
	assert.Equal(t, "Organics", rows[1]["Company"])
}

func TestParseCSVNoDataRows(t *testing.T) {
	_, _, err := Parse(strings.NewReader("Name,Company\n"), "leads.csv")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestXLSXRoundTrip(t *testing.T) {
	sheet := Sheet{
		Name:    "Leads",
		Headers: []string{"Name", "Company", "Value"},
		Rows: [][]any{
			{"Arjun", "Exports", 50000},
			{"Sneha", "Organics", 150000},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sheet))

	rows, headers, err := Parse(&buf, "export.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Company", "Value"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Arjun", rows[0]["Name"])
	assert.Equal(t, "150000", rows[1]["Value"])
}

func TestTemplateParsesBack(t *testing.T) {
	for _, kind := range []ImportKind{ImportLeads, ImportCustomers, ImportDeals} {
		data, err := Template(kind)
		require.NoError(t, err)

		rows, headers, err := Parse(bytes.NewReader(data), "template.xlsx")
		require.NoError(t, err, string(kind))
		assert.NotEmpty(t, headers)
		require.Len(t, rows, 1)

		mapping := AutoMap(headers, kind)
		assert.NotEmpty(t, mapping, string(kind))
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	sheet := LeadSheet([]domain.Lead{{Name: "Arjun", Company: "Exports", Value: 50000}})
	require.NoError(t, WriteCSV(&buf, sheet))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Name,Company,Email"))
	assert.Contains(t, lines[1], "Arjun,Exports")
}
