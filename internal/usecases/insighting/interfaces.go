package insighting

import (
	"context"

	"github.com/vfg2006/f-engage-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// InsightsProvider é a porta para a origem dos insights (simulada ou Meta Marketing API)
type InsightsProvider interface {
	// FetchInsights gera KPIs, série diária e breakdown para o período dos filtros
	FetchInsights(ctx context.Context, filters domain.InsightsFilters) (*domain.InsightsResult, error)
}

// Insighter é o store de insights consumido pelos handlers e pelo agendador
type Insighter interface {
	Filters() domain.InsightsFilters
	SetFilters(patch domain.FiltersPatch) (domain.InsightsFilters, error)
	FetchInsights(ctx context.Context) error
	Snapshot() Snapshot
	Breakdown(audience string) []domain.BreakdownRow
	AgeRollup() []domain.AgeRollup
	SuggestAudienceShift() *domain.AudienceProposal
	ApplyAudienceShift() (*domain.AudienceShiftApplication, error)
}
