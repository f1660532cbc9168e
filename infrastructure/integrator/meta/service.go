package meta

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/f-engage-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const insightFields = "account_id,campaign_id,adset_id,ad_id,impressions,reach,clicks,ctr,cpc,spend,actions"

// GraphIntegrator busca os insights reais da Marketing API e os converte para o formato do painel
type GraphIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *GraphIntegrator {
	return &GraphIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// FetchInsights faz duas consultas: a série diária (time_increment=1) e o breakdown do período
func (s *GraphIntegrator) FetchInsights(ctx context.Context, filters domain.InsightsFilters) (*domain.InsightsResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	daily, err := s.Client.GetAccountInsights(ctx, filters.AccountID, s.dailyParams(filters))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": filters.AccountID,
			"error":      err.Error(),
		}).Error("insights: failed to get daily insights from API")
		return nil, domain.NewFetchError("insights", "Erro ao buscar insights", err)
	}

	breakdown, err := s.Client.GetAccountInsights(ctx, filters.AccountID, s.breakdownParams(filters))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": filters.AccountID,
			"error":      err.Error(),
		}).Error("insights: failed to get breakdown insights from API")
		return nil, domain.NewFetchError("insights", "Erro ao buscar insights", err)
	}

	series := FactoryTimeSeries(daily, filters.Days())
	result := &domain.InsightsResult{
		KPIs:          FactoryKPIs(daily),
		TimeSeries:    series,
		BreakdownRows: FactoryBreakdownRows(breakdown),
		UpdatedAt:     s.now(),
	}

	logrus.WithFields(logrus.Fields{
		"account_id":     filters.AccountID,
		"days":           len(series),
		"breakdown_rows": len(result.BreakdownRows),
	}).Debug("insights: successfully retrieved insights from API")

	return result, nil
}

func (s *GraphIntegrator) baseParams(filters domain.InsightsFilters) url.Values {
	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("level", string(filters.Level))

	timeRange, _ := json.MarshalToString(map[string]string{
		"since": filters.Since.Format(time.DateOnly),
		"until": filters.Until.Format(time.DateOnly),
	})
	params.Add("time_range", timeRange)

	if filters.CampaignObjective != nil {
		if objectives, ok := metadomain.ObjectiveFilter[string(*filters.CampaignObjective)]; ok {
			filtering, _ := json.MarshalToString([]map[string]any{{
				"field":    "campaign.objective",
				"operator": "IN",
				"value":    objectives,
			}})
			params.Add("filtering", filtering)
		}
	}

	params.Add("limit", "500")
	return params
}

func (s *GraphIntegrator) dailyParams(filters domain.InsightsFilters) url.Values {
	params := s.baseParams(filters)
	params.Add("time_increment", "1")
	return params
}

func (s *GraphIntegrator) breakdownParams(filters domain.InsightsFilters) url.Values {
	params := s.baseParams(filters)
	breakdowns := filters.Breakdowns
	if len(breakdowns) == 0 {
		breakdowns = []string{"age", "gender", "publisher_platform"}
	}
	params.Add("breakdowns", strings.Join(breakdowns, ","))
	return params
}

// FactoryTimeSeries soma as linhas diárias por data e preenche com zero os dias sem entrega
func FactoryTimeSeries(rows []metadomain.InsightRow, days []time.Time) []domain.TimeSeriesData {
	byDate := make(map[string]*domain.TimeSeriesData, len(days))
	series := make([]domain.TimeSeriesData, len(days))
	for i, day := range days {
		series[i] = domain.TimeSeriesData{Date: day.Format(time.DateOnly)}
		byDate[series[i].Date] = &series[i]
	}

	for i := range rows {
		point, ok := byDate[rows[i].DateStart]
		if !ok {
			logrus.WithField("date_start", rows[i].DateStart).Debug("insights: ignoring row outside requested range")
			continue
		}
		point.Impressions += rows[i].ImpressionsInt()
		point.Clicks += rows[i].ClicksInt()
		point.Conversations += rows[i].Conversations()
	}

	return series
}

// FactoryKPIs agrega as linhas diárias. O alcance somado por dia é uma aproximação do alcance do período.
func FactoryKPIs(rows []metadomain.InsightRow) domain.InsightMetrics {
	var kpis domain.InsightMetrics
	conversations := 0
	for i := range rows {
		kpis.Impressions += rows[i].ImpressionsInt()
		kpis.Reach += rows[i].ReachInt()
		kpis.Clicks += rows[i].ClicksInt()
		kpis.Spend += rows[i].SpendFloat()
		conversations += rows[i].Conversations()
	}

	kpis.Spend = utils.RoundWithTwoDecimalPlace(kpis.Spend)
	kpis.CTR = utils.RoundWithTwoDecimalPlace(domain.CTR(kpis.Clicks, kpis.Impressions))
	kpis.CPC = utils.RoundWithTwoDecimalPlace(domain.CPC(kpis.Spend, kpis.Clicks))
	kpis.FillConversionMetrics(conversations)

	return kpis
}

// FactoryBreakdownRows converte as linhas do breakdown recalculando CTR e CPC a partir dos totais
func FactoryBreakdownRows(rows []metadomain.InsightRow) []domain.BreakdownRow {
	type key struct{ age, gender, placement string }

	index := make(map[key]int)
	result := make([]domain.BreakdownRow, 0, len(rows))
	for i := range rows {
		k := key{rows[i].Age, rows[i].Gender, rows[i].Placement()}
		pos, ok := index[k]
		if !ok {
			pos = len(result)
			index[k] = pos
			result = append(result, domain.BreakdownRow{Age: k.age, Gender: k.gender, Placement: k.placement})
		}

		result[pos].Impressions += rows[i].ImpressionsInt()
		result[pos].Reach += rows[i].ReachInt()
		result[pos].Clicks += rows[i].ClicksInt()
		result[pos].Spend += rows[i].SpendFloat()
	}

	for i := range result {
		result[i].Spend = utils.RoundWithTwoDecimalPlace(result[i].Spend)
		result[i].CTR = utils.RoundWithTwoDecimalPlace(domain.CTR(result[i].Clicks, result[i].Impressions))
		result[i].CPC = utils.RoundWithTwoDecimalPlace(domain.CPC(result[i].Spend, result[i].Clicks))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Age != result[j].Age {
			return result[i].Age < result[j].Age
		}
		if result[i].Gender != result[j].Gender {
			return result[i].Gender < result[j].Gender
		}
		return result[i].Placement < result[j].Placement
	})

	return result
}
