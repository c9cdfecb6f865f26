package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
)

func closedAt(t time.Time) *time.Time { return &t }

func TestWinRateAndValues(t *testing.T) {
	now := time.Now()
	deals := []domain.Deal{
		{Stage: domain.StageWon, Value: 100, ActualClose: closedAt(now)},
		{Stage: domain.StageWon, Value: 200, ActualClose: closedAt(now)},
		{Stage: domain.StageLost, Value: 50},
		{Stage: domain.StageDiscovery, Value: 75},
	}

	r := Build(RangeMonth, nil, nil, deals, nil)
	assert.Equal(t, 67, r.WinRate)
	assert.Equal(t, 300.0, r.WonValue)
	assert.Equal(t, 50.0, r.LostValue)
	assert.Equal(t, 75.0, r.PipelineValue)
}

func TestWinRateZeroWithoutClosedDeals(t *testing.T) {
	r := Build(RangeMonth, nil, nil, []domain.Deal{{Stage: domain.StageDiscovery, Value: 10}}, nil)
	assert.Equal(t, 0, r.WinRate)
}

func TestCountsRespectWindowCutoff(t *testing.T) {
	now := time.Now()
	leads := []domain.Lead{
		{CreatedAt: now.AddDate(0, 0, -2)},
		{CreatedAt: now.AddDate(0, 0, -30)},
	}

	r := Build(RangeWeek, leads, nil, nil, nil)
	assert.Equal(t, 1, r.LeadsCount)

	r = Build(RangeQuarter, leads, nil, nil, nil)
	assert.Equal(t, 2, r.LeadsCount)
}

func TestMonthlyRevenueBucketsWonDeals(t *testing.T) {
	year := time.Now().Year()
	march := time.Date(year, time.March, 10, 0, 0, 0, 0, time.Local)
	lastYear := time.Date(year-1, time.March, 10, 0, 0, 0, 0, time.Local)
	deals := []domain.Deal{
		{Stage: domain.StageWon, Value: 500, ActualClose: &march},
		{Stage: domain.StageWon, Value: 900, ActualClose: &lastYear},
		{Stage: domain.StageDiscovery, Value: 100},
	}

	r := Build(RangeFiscal, nil, nil, deals, nil)
	require.Len(t, r.MonthlyRevenue, 12)
	assert.Equal(t, "Mar", r.MonthlyRevenue[2].Name)
	assert.Equal(t, 500.0, r.MonthlyRevenue[2].Value)
	assert.Equal(t, 0.0, r.MonthlyRevenue[0].Value)
}

func TestFunnel(t *testing.T) {
	leads := []domain.Lead{
		{Status: domain.LeadStatusNew},
		{Status: domain.LeadStatusContacted},
		{Status: domain.LeadStatusQualified},
	}
	customers := []domain.Customer{{Name: "c1"}}

	r := Build(RangeMonth, leads, customers, nil, nil)
	require.Len(t, r.Funnel, 4)
	assert.Equal(t, NamedValue{Name: "Total Leads", Value: 3}, r.Funnel[0])
	assert.Equal(t, NamedValue{Name: "Engaged", Value: 2}, r.Funnel[1])
	assert.Equal(t, NamedValue{Name: "Qualified", Value: 1}, r.Funnel[2])
	assert.Equal(t, NamedValue{Name: "Customers", Value: 1}, r.Funnel[3])
}

func TestLeadSourcesKeepFirstSeenOrder(t *testing.T) {
	now := time.Now()
	leads := []domain.Lead{
		{Source: "Website", CreatedAt: now},
		{Source: "Referral", CreatedAt: now},
		{Source: "Website", CreatedAt: now},
	}

	r := Build(RangeMonth, leads, nil, nil, nil)
	require.Len(t, r.LeadSources, 2)
	assert.Equal(t, NamedValue{Name: "Website", Value: 2}, r.LeadSources[0])
	assert.Equal(t, NamedValue{Name: "Referral", Value: 1}, r.LeadSources[1])
}

func TestTeamPerformanceCountsWonOnly(t *testing.T) {
	deals := []domain.Deal{
		{AssignedTo: "Amit Sharma", Stage: domain.StageWon, Value: 100},
		{AssignedTo: "Amit Sharma", Stage: domain.StageDiscovery, Value: 50},
		{AssignedTo: "Sonal Verma", Stage: domain.StageWon, Value: 200},
		{Stage: domain.StageWon, Value: 999}, // unassigned, ignored
	}

	r := Build(RangeMonth, nil, nil, deals, nil)
	require.Len(t, r.Team, 2)
	assert.Equal(t, TeamMember{Name: "Amit Sharma", WonDeals: 1, WonValue: 100}, r.Team[0])
	assert.Equal(t, TeamMember{Name: "Sonal Verma", WonDeals: 1, WonValue: 200}, r.Team[1])
}

func TestHeatmapShape(t *testing.T) {
	r := Build(RangeMonth, nil, nil, nil, nil)
	require.Len(t, r.Heatmap, 28)
	for _, cell := range r.Heatmap {
		assert.GreaterOrEqual(t, cell.Engagement, 0.05)
		assert.LessOrEqual(t, cell.Engagement, 1.0)
	}
}
