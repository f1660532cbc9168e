package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReportSummary(t *testing.T) {
	leads := []*Lead{
		{ID: "lead_1", AdsetID: ptr("2200"), Status: LeadStatusWon, ConversionValue: ptr(1500.0)},
		{ID: "lead_2", AdsetID: ptr("2200"), Status: LeadStatusOpen, ConversionValue: ptr(999.0)},
		{ID: "lead_3", AdsetID: ptr("2201"), Status: LeadStatusWon},
		{ID: "lead_4", Status: LeadStatusNew},
	}

	summary := BuildReportSummary(InsightMetrics{Clicks: 100, Spend: 500}, leads)

	assert.Equal(t, LeadCounts{Total: 4, New: 1, Open: 1, Won: 2}, summary.Leads)
	assert.Equal(t, 1500.0, summary.TotalConversion)
	assert.Equal(t, 1500.0, summary.AvgConversionValue)
	assert.Equal(t, 4.0, summary.ConversationRate)
	assert.Equal(t, 50.0, summary.ConversionRate)
	assert.Equal(t, 125.0, summary.CostPerConversation)
	assert.Equal(t, 200.0, summary.EstimatedROI)
	assert.Equal(t, []AdsetConversations{
		{AdsetID: "2200", Conversations: 2, Won: 1, Rate: 50},
		{AdsetID: "2201", Conversations: 1, Won: 1, Rate: 100},
	}, summary.TopAdsets)
}

func TestBuildReportSummary_SemDados(t *testing.T) {
	summary := BuildReportSummary(InsightMetrics{}, nil)

	assert.Equal(t, LeadCounts{}, summary.Leads)
	assert.Zero(t, summary.ConversationRate)
	assert.Zero(t, summary.ConversionRate)
	assert.Zero(t, summary.CostPerConversation)
	assert.Zero(t, summary.AvgConversionValue)
	assert.Zero(t, summary.EstimatedROI)
	assert.NotNil(t, summary.TopAdsets)
	assert.Empty(t, summary.TopAdsets)
}
