package domain

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/vfg2006/f-engage-api/pkg/utils"
)

type InsightLevel string

const (
	InsightLevelCampaign InsightLevel = "campaign"
	InsightLevelAdset    InsightLevel = "adset"
	InsightLevelAd       InsightLevel = "ad"
)

type CampaignObjective string

const (
	ObjectiveAll         CampaignObjective = "all"
	ObjectiveConversions CampaignObjective = "conversions"
	ObjectiveMessages    CampaignObjective = "messages"
	ObjectiveTraffic     CampaignObjective = "traffic"
	ObjectiveAwareness   CampaignObjective = "awareness"
	ObjectiveAppInstalls CampaignObjective = "app_installs"
)

func (l InsightLevel) IsValid() bool {
	return slices.Contains([]InsightLevel{InsightLevelCampaign, InsightLevelAdset, InsightLevelAd}, l)
}

func (o CampaignObjective) IsValid() bool {
	return slices.Contains([]CampaignObjective{
		ObjectiveAll, ObjectiveConversions, ObjectiveMessages,
		ObjectiveTraffic, ObjectiveAwareness, ObjectiveAppInstalls,
	}, o)
}

// InsightsFilters são os parâmetros de uma consulta de insights. Since e Until são inclusivos.
type InsightsFilters struct {
	AccountID         string             `json:"account_id"`
	Since             time.Time          `json:"since"`
	Until             time.Time          `json:"until"`
	Level             InsightLevel       `json:"level"`
	Breakdowns        []string           `json:"breakdowns"`
	CampaignObjective *CampaignObjective `json:"campaign_objective,omitempty"`
}

// FiltersPatch é uma atualização parcial de filtros: campos nil não são alterados
type FiltersPatch struct {
	AccountID         *string            `json:"account_id,omitempty"`
	Since             *time.Time         `json:"since,omitempty"`
	Until             *time.Time         `json:"until,omitempty"`
	Level             *InsightLevel      `json:"level,omitempty"`
	Breakdowns        []string           `json:"breakdowns,omitempty"`
	CampaignObjective *CampaignObjective `json:"campaign_objective,omitempty"`
}

// Validate verifica as regras de data e enumerações dos filtros
func (f InsightsFilters) Validate() error {
	if f.Since.IsZero() || f.Until.IsZero() {
		return NewValidationError("since", "é necessário informar as datas de início e fim")
	}
	if f.Since.After(f.Until) {
		return NewValidationError("since", "a data de início não pode ser posterior à data de fim")
	}
	if !f.Level.IsValid() {
		return NewValidationError("level", "nível inválido: "+string(f.Level))
	}
	if f.CampaignObjective != nil && !f.CampaignObjective.IsValid() {
		return NewValidationError("campaign_objective", "objetivo de campanha inválido: "+string(*f.CampaignObjective))
	}
	return nil
}

// Merge aplica o patch sobre uma cópia dos filtros
func (f InsightsFilters) Merge(patch FiltersPatch) InsightsFilters {
	merged := f
	merged.Breakdowns = slices.Clone(f.Breakdowns)

	if patch.AccountID != nil {
		merged.AccountID = *patch.AccountID
	}
	if patch.Since != nil {
		merged.Since = *patch.Since
	}
	if patch.Until != nil {
		merged.Until = *patch.Until
	}
	if patch.Level != nil {
		merged.Level = *patch.Level
	}
	if patch.Breakdowns != nil {
		merged.Breakdowns = slices.Clone(patch.Breakdowns)
	}
	if patch.CampaignObjective != nil {
		objective := *patch.CampaignObjective
		merged.CampaignObjective = &objective
	}

	return merged
}

// Days retorna cada dia do calendário entre Since e Until, inclusive, em ordem crescente
func (f InsightsFilters) Days() []time.Time {
	return utils.DateRange(f.Since, f.Until)
}

type InsightMetrics struct {
	Impressions       int     `json:"impressions"`
	Reach             int     `json:"reach"`
	Clicks            int     `json:"clicks"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	Spend             float64 `json:"spend"`
	Conversions       int     `json:"conversions,omitempty"`
	CostPerConversion float64 `json:"costPerConversion,omitempty"`
	ConversionRate    float64 `json:"conversionRate,omitempty"`
}

type BreakdownRow struct {
	InsightMetrics
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Placement string `json:"placement"`
}

type TimeSeriesData struct {
	Date          string `json:"date"`
	Impressions   int    `json:"impressions"`
	Clicks        int    `json:"clicks"`
	Conversations int    `json:"conversations"`
}

type InsightsResult struct {
	KPIs          InsightMetrics   `json:"kpis"`
	TimeSeries    []TimeSeriesData `json:"timeSeries"`
	BreakdownRows []BreakdownRow   `json:"breakdownRows"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CTR calcula cliques / impressões * 100. Zero impressões resultam em CTR zero.
func CTR(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// CPC calcula investimento / cliques. Zero cliques resultam em CPC zero.
func CPC(spend float64, clicks int) float64 {
	if clicks <= 0 {
		return 0
	}
	return spend / float64(clicks)
}

// FillConversionMetrics deriva custo por conversão e taxa de conversão a partir dos totais
func (m *InsightMetrics) FillConversionMetrics(conversions int) {
	m.Conversions = conversions
	m.CostPerConversion = 0
	m.ConversionRate = 0
	if conversions > 0 {
		m.CostPerConversion = utils.RoundWithTwoDecimalPlace(m.Spend / float64(conversions))
	}
	if m.Clicks > 0 {
		m.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(conversions) / float64(m.Clicks) * 100)
	}
}

// Faixas etárias que a simulação favorece e que a sugestão de público observa
const (
	AgeBucket18To24 = "18-24"
	AgeBucket35To44 = "35-44"
	AgeBucket45To54 = "45-54"

	// AudienceAll e Audience35To55 são os filtros de público do painel
	AudienceAll    = "all"
	Audience35To55 = "35-55"
)

func IsFavoredAge(age string) bool {
	return age == AgeBucket35To44 || age == AgeBucket45To54
}

// FilterBreakdown aplica o filtro de público ("all" ou "35-55") às linhas
func FilterBreakdown(rows []BreakdownRow, audience string) []BreakdownRow {
	filtered := make([]BreakdownRow, 0, len(rows))
	for _, row := range rows {
		if audience == Audience35To55 && !IsFavoredAge(row.Age) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// AgeRollup soma impressões e cliques por faixa etária
type AgeRollup struct {
	Age         string  `json:"age"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// RollupByAge agrega as linhas por idade, ordenando pelo CTR decrescente
func RollupByAge(rows []BreakdownRow) []AgeRollup {
	index := make(map[string]int)
	rollup := make([]AgeRollup, 0)
	for _, row := range rows {
		i, ok := index[row.Age]
		if !ok {
			i = len(rollup)
			index[row.Age] = i
			rollup = append(rollup, AgeRollup{Age: row.Age})
		}
		rollup[i].Impressions += row.Impressions
		rollup[i].Clicks += row.Clicks
	}

	for i := range rollup {
		rollup[i].CTR = CTR(rollup[i].Clicks, rollup[i].Impressions)
	}

	sort.SliceStable(rollup, func(i, j int) bool {
		return rollup[i].CTR > rollup[j].CTR
	})

	return rollup
}

// SafeFinite troca NaN e infinito por zero
func SafeFinite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
