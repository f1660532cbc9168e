package domain

import (
	"sort"

	"github.com/vfg2006/f-engage-api/pkg/utils"
)

// AdsetConversations agrupa conversas (leads) por conjunto de anúncios
type AdsetConversations struct {
	AdsetID       string  `json:"adset_id"`
	Conversations int     `json:"conversations"`
	Won           int     `json:"won"`
	Rate          float64 `json:"rate"`
}

type ReportSummary struct {
	KPIs                InsightMetrics       `json:"kpis"`
	Leads               LeadCounts           `json:"leads"`
	ConversationRate    float64              `json:"conversation_rate"`
	ConversionRate      float64              `json:"conversion_rate"`
	AvgConversionValue  float64              `json:"avg_conversion_value"`
	TotalConversion     float64              `json:"total_conversion_value"`
	CostPerConversation float64              `json:"cost_per_conversation"`
	EstimatedROI        float64              `json:"estimated_roi"`
	TopAdsets           []AdsetConversations `json:"top_adsets"`
}

// BuildReportSummary combina os KPIs de anúncios com a lista de leads. Valores de conversão só contam
// para leads ganhos, e toda razão é protegida contra divisão por zero.
func BuildReportSummary(kpis InsightMetrics, leads []*Lead) *ReportSummary {
	counts := CountLeads(leads)

	total := 0.0
	valued := 0
	for _, lead := range leads {
		if v := lead.RecognizedConversionValue(); v > 0 {
			total += v
			valued++
		}
	}

	summary := &ReportSummary{
		KPIs:            kpis,
		Leads:           counts,
		TotalConversion: utils.RoundWithTwoDecimalPlace(total),
		TopAdsets:       conversationsByAdset(leads),
	}

	if kpis.Clicks > 0 {
		summary.ConversationRate = utils.RoundWithTwoDecimalPlace(float64(counts.Total) / float64(kpis.Clicks) * 100)
	}
	if counts.Total > 0 {
		summary.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(counts.Won) / float64(counts.Total) * 100)
		summary.CostPerConversation = utils.RoundWithTwoDecimalPlace(kpis.Spend / float64(counts.Total))
	}
	if valued > 0 {
		summary.AvgConversionValue = utils.RoundWithTwoDecimalPlace(total / float64(valued))
	}
	if kpis.Spend > 0 {
		summary.EstimatedROI = utils.RoundWithTwoDecimalPlace((total/kpis.Spend - 1) * 100)
	}

	return summary
}

func conversationsByAdset(leads []*Lead) []AdsetConversations {
	index := make(map[string]int)
	rows := make([]AdsetConversations, 0)
	for _, lead := range leads {
		attr := lead.Attribution()
		if attr.AdsetID == "" {
			continue
		}
		i, ok := index[attr.AdsetID]
		if !ok {
			i = len(rows)
			index[attr.AdsetID] = i
			rows = append(rows, AdsetConversations{AdsetID: attr.AdsetID})
		}
		rows[i].Conversations++
		if lead.Status == LeadStatusWon {
			rows[i].Won++
		}
	}

	for i := range rows {
		rows[i].Rate = utils.RoundWithTwoDecimalPlace(float64(rows[i].Won) / float64(rows[i].Conversations) * 100)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Conversations != rows[j].Conversations {
			return rows[i].Conversations > rows[j].Conversations
		}
		return rows[i].AdsetID < rows[j].AdsetID
	})

	return rows
}
