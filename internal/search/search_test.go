package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
)

func sampleLeads() []domain.Lead {
	return []domain.Lead{
		{ID: "l1", Name: "Arjun Mehta", Company: "Tech India Solutions", Phone: "+91 98765 43210", Email: "arjun@techindia.in", City: "Mumbai"},
		{ID: "l2", Name: "John Fernandes", Company: "Goa Traders", City: "Panaji"},
	}
}

func TestShortQueryReturnsNothing(t *testing.T) {
	out := Global("a", sampleLeads(), nil, nil)
	assert.Empty(t, out.Leads)
	assert.Empty(t, out.Customers)
	assert.Empty(t, out.Deals)
}

func TestMatchesByNameAndCity(t *testing.T) {
	out := Global("mumbai", sampleLeads(), nil, nil)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "l1", out.Leads[0].ID)
	assert.Equal(t, "Arjun Mehta", out.Leads[0].Title)
	assert.Equal(t, "Tech India Solutions", out.Leads[0].Subtitle)
}

func TestCountryPrefixStripped(t *testing.T) {
	out := Global("+91 98765", sampleLeads(), nil, nil)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "l1", out.Leads[0].ID)
}

func TestSubsequenceMatch(t *testing.T) {
	// sloppy typing still finds "John"
	out := Global("jhn", sampleLeads(), nil, nil)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "l2", out.Leads[0].ID)
}

func TestCategoryCappedAtFive(t *testing.T) {
	var leads []domain.Lead
	for i := 0; i < 8; i++ {
		leads = append(leads, domain.Lead{ID: fmt.Sprintf("l%d", i), Name: "Repeat Lead", Company: "Same Co"})
	}

	out := Global("repeat", leads, nil, nil)
	assert.Len(t, out.Leads, 5)
}

func TestSearchesCustomersAndDeals(t *testing.T) {
	customers := []domain.Customer{{ID: "c1", Name: "Sunil Kumar", Company: "Global Corp", Phone: "9876511111"}}
	deals := []domain.Deal{{ID: "d1", Title: "Cloud Migration", CustomerName: "Global Corp"}}

	out := Global("global", nil, customers, deals)
	require.Len(t, out.Customers, 1)
	assert.Equal(t, "c1", out.Customers[0].ID)
	require.Len(t, out.Deals, 1)
	assert.Equal(t, "d1", out.Deals[0].ID)
}

func TestIsSubsequence(t *testing.T) {
	assert.True(t, isSubsequence("jhn", "john"))
	assert.True(t, isSubsequence("abc", "aXbXc"))
	assert.False(t, isSubsequence("cba", "abc"))
	assert.False(t, isSubsequence("abcc", "abc"))
}
