package insighting

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/metrics"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

// Mensagem mantida no store quando o provedor falha
const fetchErrorMessage = "Erro ao buscar insights"

// Snapshot é uma cópia consistente do estado do store
type Snapshot struct {
	Filters       domain.InsightsFilters  `json:"filters"`
	KPIs          domain.InsightMetrics   `json:"kpis"`
	Series        []domain.TimeSeriesData `json:"series"`
	BreakdownRows []domain.BreakdownRow   `json:"breakdownRows"`
	Loading       bool                    `json:"loading"`
	Error         string                  `json:"error,omitempty"`
	LastUpdated   *time.Time              `json:"lastUpdated,omitempty"`
}

// Store guarda o resultado da última busca de insights. O mutex protege apenas o acesso aos campos:
// buscas concorrentes não são serializadas e a última a terminar vence.
type Store struct {
	provider InsightsProvider
	metrics  *metrics.Metrics
	now      func() time.Time

	mu            sync.RWMutex
	filters       domain.InsightsFilters
	kpis          domain.InsightMetrics
	series        []domain.TimeSeriesData
	breakdownRows []domain.BreakdownRow
	loading       bool
	err           string
	lastUpdated   *time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithFilters substitui os filtros iniciais derivados da configuração
func WithFilters(filters domain.InsightsFilters) Option {
	return func(s *Store) {
		s.filters = filters
	}
}

// NewStore cria o store de insights com os filtros padrão: últimos N dias até hoje
func NewStore(cfg *config.Config, provider InsightsProvider, opts ...Option) *Store {
	s := &Store{
		provider:      provider,
		now:           time.Now,
		series:        []domain.TimeSeriesData{},
		breakdownRows: []domain.BreakdownRow{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.filters.AccountID == "" {
		s.filters = DefaultFilters(cfg, s.now())
	}

	return s
}

// DefaultFilters monta os filtros iniciais a partir da configuração
func DefaultFilters(cfg *config.Config, now time.Time) domain.InsightsFilters {
	today := utils.TruncateDay(now)
	objective := domain.CampaignObjective(cfg.Insights.DefaultObjective)

	filters := domain.InsightsFilters{
		AccountID:  cfg.Insights.DefaultAccountID,
		Since:      today.AddDate(0, 0, -cfg.Insights.LookbackDays),
		Until:      today,
		Level:      domain.InsightLevel(cfg.Insights.DefaultLevel),
		Breakdowns: slices.Clone(cfg.Insights.DefaultBreakdowns),
	}
	if objective != "" {
		filters.CampaignObjective = &objective
	}

	return filters
}

func (s *Store) Filters() domain.InsightsFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Merge(domain.FiltersPatch{})
}

// SetFilters mescla o patch nos filtros atuais sem disparar uma nova busca.
// Um patch inválido é rejeitado e os filtros permanecem como estavam.
func (s *Store) SetFilters(patch domain.FiltersPatch) (domain.InsightsFilters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.filters.Merge(patch)
	if err := merged.Validate(); err != nil {
		logrus.WithError(err).Warn("insights: filtros rejeitados")
		return s.filters.Merge(domain.FiltersPatch{}), err
	}

	s.filters = merged
	logrus.WithFields(logrus.Fields{
		"account_id": merged.AccountID,
		"since":      merged.Since.Format(time.DateOnly),
		"until":      merged.Until.Format(time.DateOnly),
		"level":      merged.Level,
	}).Debug("insights: filtros atualizados")

	return merged.Merge(domain.FiltersPatch{}), nil
}

// FetchInsights busca novamente KPIs, série e breakdown usando os filtros atuais.
// A falha é mantida como mensagem no store e também devolvida ao chamador.
func (s *Store) FetchInsights(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	filters := s.filters.Merge(domain.FiltersPatch{})
	s.mu.Unlock()

	started := time.Now()
	result, err := s.fetch(ctx, filters)
	s.metrics.ObserveFetch("insights", started, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = fetchErrorMessage
		logrus.WithError(err).WithField("account_id", filters.AccountID).Error("insights: falha ao buscar insights")
		return err
	}

	updatedAt := result.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.now()
	}

	s.kpis = result.KPIs
	s.series = result.TimeSeries
	s.breakdownRows = result.BreakdownRows
	s.lastUpdated = &updatedAt
	s.metrics.SetBreakdownRows(len(result.BreakdownRows))

	logrus.WithFields(logrus.Fields{
		"account_id":     filters.AccountID,
		"days":           len(result.TimeSeries),
		"breakdown_rows": len(result.BreakdownRows),
	}).Info("insights: insights atualizados")

	return nil
}

func (s *Store) fetch(ctx context.Context, filters domain.InsightsFilters) (*domain.InsightsResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	result, err := s.provider.FetchInsights(ctx, filters)
	if err != nil {
		return nil, domain.NewFetchError("insights", fetchErrorMessage, err)
	}
	if result == nil {
		return nil, domain.NewFetchError("insights", fetchErrorMessage, nil)
	}

	return result, nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		Filters:       s.filters.Merge(domain.FiltersPatch{}),
		KPIs:          s.kpis,
		Series:        slices.Clone(s.series),
		BreakdownRows: slices.Clone(s.breakdownRows),
		Loading:       s.loading,
		Error:         s.err,
	}
	if s.lastUpdated != nil {
		lastUpdated := *s.lastUpdated
		snapshot.LastUpdated = &lastUpdated
	}

	return snapshot
}

// Breakdown devolve as linhas filtradas pelo público ("all" ou "35-55")
func (s *Store) Breakdown(audience string) []domain.BreakdownRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FilterBreakdown(s.breakdownRows, audience)
}

func (s *Store) AgeRollup() []domain.AgeRollup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.RollupByAge(s.breakdownRows)
}
