package whatsapp

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

// Latency são os atrasos artificiais de cada chamada do provedor simulado
type Latency struct {
	FetchAll time.Duration
	FetchOne time.Duration
	Mutation time.Duration
}

// MockProvider simula o WhatsApp Business CTWA com uma lista de leads em memória.
// Toda leitura devolve cópias; apenas AssignLead e SetLeadStatus alteram a lista.
type MockProvider struct {
	mu      sync.Mutex
	leads   []*domain.Lead
	latency Latency
}

// NewMockProvider cria o provedor com a fixture de oito leads e os atrasos configurados
func NewMockProvider(cfg *config.Config) *MockProvider {
	return NewMockProviderWithLeads(FixtureLeads(), Latency{
		FetchAll: cfg.MockLatency.LeadsFetch,
		FetchOne: cfg.MockLatency.LeadFetch,
		Mutation: cfg.MockLatency.LeadMutation,
	})
}

func NewMockProviderWithLeads(leads []*domain.Lead, latency Latency) *MockProvider {
	held := make([]*domain.Lead, 0, len(leads))
	for _, lead := range leads {
		held = append(held, lead.Clone())
	}

	return &MockProvider{leads: held, latency: latency}
}

func (p *MockProvider) FetchLeads(ctx context.Context, status *domain.LeadStatus) ([]*domain.Lead, error) {
	if err := utils.Delay(ctx, p.latency.FetchAll); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	leads := make([]*domain.Lead, 0, len(p.leads))
	for _, lead := range p.leads {
		if status != nil && lead.Status != *status {
			continue
		}
		leads = append(leads, lead.Clone())
	}

	return leads, nil
}

func (p *MockProvider) FetchLead(ctx context.Context, id string) (*domain.Lead, error) {
	if err := utils.Delay(ctx, p.latency.FetchOne); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if lead := p.find(id); lead != nil {
		return lead.Clone(), nil
	}

	return nil, nil
}

func (p *MockProvider) AssignLead(ctx context.Context, id string, owner string) error {
	if err := utils.Delay(ctx, p.latency.Mutation); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	lead := p.find(id)
	if lead == nil {
		logrus.WithField("lead_id", id).Debug("whatsapp: atribuição ignorada, lead inexistente")
		return nil
	}

	lead.AssignOwner(owner)
	return nil
}

func (p *MockProvider) SetLeadStatus(ctx context.Context, id string, status domain.LeadStatus, conversionValue *float64) error {
	if err := utils.Delay(ctx, p.latency.Mutation); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	lead := p.find(id)
	if lead == nil {
		logrus.WithField("lead_id", id).Debug("whatsapp: mudança de status ignorada, lead inexistente")
		return nil
	}

	lead.ApplyStatus(status, conversionValue)
	return nil
}

func (p *MockProvider) find(id string) *domain.Lead {
	for _, lead := range p.leads {
		if lead.ID == id {
			return lead
		}
	}
	return nil
}
