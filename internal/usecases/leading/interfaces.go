package leading

import (
	"context"

	"github.com/vfg2006/f-engage-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// LeadsProvider é a fonte dos leads CTWA (fixture em memória ou PostgreSQL)
type LeadsProvider interface {
	// FetchLeads lista os leads, opcionalmente filtrados por status
	FetchLeads(ctx context.Context, status *domain.LeadStatus) ([]*domain.Lead, error)

	// FetchLead busca um lead pelo ID. Retorna nil, nil quando não existe.
	FetchLead(ctx context.Context, id string) (*domain.Lead, error)

	AssignLead(ctx context.Context, id string, owner string) error

	// SetLeadStatus grava o valor de conversão somente quando status é won e o valor é positivo
	SetLeadStatus(ctx context.Context, id string, status domain.LeadStatus, conversionValue *float64) error
}

// Leader é o estado compartilhado da lista de leads consumido pelos handlers
type Leader interface {
	FetchAll(ctx context.Context, status *domain.LeadStatus) error
	FetchOne(ctx context.Context, id string) (*domain.Lead, error)
	Assign(ctx context.Context, id string, owner string) error
	SetStatus(ctx context.Context, id string, status domain.LeadStatus, conversionValue *float64) error

	Leads() []*domain.Lead
	Filtered(status *domain.LeadStatus) []*domain.Lead
	Counts() domain.LeadCounts
	Selected() *domain.Lead
	State() State
}
