package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
)

func disabledAssist(t *testing.T) *Assist {
	t.Helper()
	a, err := New(context.Background(), "")
	require.NoError(t, err)
	require.False(t, a.Enabled())
	return a
}

func TestDisabledAssistServesFallbacks(t *testing.T) {
	a := disabledAssist(t)
	ctx := context.Background()
	lead := domain.Lead{Name: "Arjun", Company: "Tech India"}

	assert.Nil(t, a.ScoreLead(ctx, lead, nil))
	assert.Nil(t, a.GenerateEmail(ctx, "follow up", "friendly", "", EmailContext{}))
	assert.Empty(t, a.ImproveEmail(ctx, "hi"))
	assert.Nil(t, a.CheckGrammar(ctx, "hi"))
	assert.Empty(t, a.Translate(ctx, "hi", "Hindi"))
	assert.Nil(t, a.AnalyzeNote(ctx, "met at expo"))
	assert.Nil(t, a.EnrichCompany(ctx, "Tech India"))
	assert.Nil(t, a.ExtractLead(ctx, "Arjun from Tech India", nil, nil))
}

func TestDisabledSummaries(t *testing.T) {
	a := disabledAssist(t)
	ctx := context.Background()

	assert.Equal(t, "Summary unavailable.", a.SummarizeLead(ctx, domain.Lead{}, nil))
	assert.Equal(t, "No activity to summarize.", a.SummarizeActivities(ctx, nil))
	assert.Equal(t, "No strategic insights available without API key.", a.StrategicInsights(ctx, domain.Lead{}, nil))
}

func TestDisabledDuplicates(t *testing.T) {
	a := disabledAssist(t)
	existing := []domain.Lead{{ID: "l1", Name: "Arjun"}}

	assert.Nil(t, a.DetectDuplicates(context.Background(), domain.Lead{Name: "Arjun"}, existing))
}

func TestDisabledReportInsights(t *testing.T) {
	a := disabledAssist(t)

	insights := a.ReportInsights(context.Background(), ReportMetrics{LeadsCount: 10})
	require.Len(t, insights, 3)
	assert.Equal(t, fallbackInsights, insights)
}
