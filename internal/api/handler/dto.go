package handler

import (
	"time"

	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

// FiltersDTO é a forma dos filtros na API, com datas "YYYY-MM-DD"
type FiltersDTO struct {
	AccountID         string                    `json:"account_id"`
	Since             string                    `json:"since"`
	Until             string                    `json:"until"`
	Level             domain.InsightLevel       `json:"level"`
	Breakdowns        []string                  `json:"breakdowns"`
	CampaignObjective *domain.CampaignObjective `json:"campaign_objective,omitempty"`
}

func NewFiltersDTO(f domain.InsightsFilters) FiltersDTO {
	return FiltersDTO{
		AccountID:         f.AccountID,
		Since:             f.Since.Format(time.DateOnly),
		Until:             f.Until.Format(time.DateOnly),
		Level:             f.Level,
		Breakdowns:        f.Breakdowns,
		CampaignObjective: f.CampaignObjective,
	}
}

// FiltersPatchRequest é o corpo de PUT /v1/insights/filters
type FiltersPatchRequest struct {
	AccountID         *string                   `json:"account_id"`
	Since             *string                   `json:"since"`
	Until             *string                   `json:"until"`
	Level             *domain.InsightLevel      `json:"level"`
	Breakdowns        []string                  `json:"breakdowns"`
	CampaignObjective *domain.CampaignObjective `json:"campaign_objective"`
}

func (req FiltersPatchRequest) ToPatch() (domain.FiltersPatch, error) {
	patch := domain.FiltersPatch{
		AccountID:         req.AccountID,
		Level:             req.Level,
		Breakdowns:        req.Breakdowns,
		CampaignObjective: req.CampaignObjective,
	}

	if req.Since != nil {
		since, err := utils.ParseDate(*req.Since)
		if err != nil {
			return patch, domain.NewValidationError("since", "data inválida: "+*req.Since)
		}
		patch.Since = since
	}

	if req.Until != nil {
		until, err := utils.ParseDate(*req.Until)
		if err != nil {
			return patch, domain.NewValidationError("until", "data inválida: "+*req.Until)
		}
		patch.Until = until
	}

	return patch, nil
}

// InsightsResponse é o estado do store de insights exposto pela API
type InsightsResponse struct {
	Filters       FiltersDTO              `json:"filters"`
	KPIs          domain.InsightMetrics   `json:"kpis"`
	Series        []domain.TimeSeriesData `json:"series"`
	BreakdownRows []domain.BreakdownRow   `json:"breakdownRows"`
	Loading       bool                    `json:"loading"`
	Error         string                  `json:"error,omitempty"`
	LastUpdated   *time.Time              `json:"lastUpdated,omitempty"`
}

func NewInsightsResponse(s insighting.Snapshot) InsightsResponse {
	return InsightsResponse{
		Filters:       NewFiltersDTO(s.Filters),
		KPIs:          s.KPIs,
		Series:        s.Series,
		BreakdownRows: s.BreakdownRows,
		Loading:       s.Loading,
		Error:         s.Error,
		LastUpdated:   s.LastUpdated,
	}
}

// LeadResponse acrescenta a atribuição resolvida ao lead
type LeadResponse struct {
	*domain.Lead
	Attribution domain.Attribution `json:"attribution"`
}

// LeadPresenter aplica a flag FEATURE_WHATSAPP_CLID às respostas de leads
type LeadPresenter struct {
	ShowCTWAClid bool
}

func (p LeadPresenter) Present(lead *domain.Lead) LeadResponse {
	out := lead.Clone()
	attribution := out.Attribution()
	if !p.ShowCTWAClid {
		out.CTWAClid = nil
		attribution.CTWAClid = ""
	}
	return LeadResponse{Lead: out, Attribution: attribution}
}

func (p LeadPresenter) PresentAll(leads []*domain.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, p.Present(lead))
	}
	return out
}

type LeadsResponse struct {
	Leads  []LeadResponse    `json:"leads"`
	Counts domain.LeadCounts `json:"counts"`
}

type AssignLeadRequest struct {
	Owner string `json:"owner"`
}

type SetLeadStatusRequest struct {
	Status          domain.LeadStatus `json:"status"`
	ConversionValue *float64          `json:"conversion_value"`
}
