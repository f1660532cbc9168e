package leading

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/metrics"
)

// Mensagens guardadas no store quando o provedor falha
const (
	errFetchLeads   = "Erro ao buscar leads"
	errFetchLead    = "Erro ao buscar lead"
	errAssignLead   = "Erro ao atribuir lead"
	errUpdateStatus = "Erro ao atualizar status"
)

// State é uma cópia do estado do store de leads
type State struct {
	Leads    []*domain.Lead `json:"leads"`
	Selected *domain.Lead   `json:"selected,omitempty"`
	Loading  bool           `json:"loading"`
	Error    string         `json:"error,omitempty"`
}

// Store guarda a última lista de leads buscada e o lead selecionado.
// As operações não são coordenadas entre si: uma busca concorrente com uma atribuição resolve por última escrita.
type Store struct {
	provider LeadsProvider
	metrics  *metrics.Metrics

	mu       sync.RWMutex
	leads    []*domain.Lead
	selected *domain.Lead
	loading  bool
	err      string
}

type Option func(*Store)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func NewStore(provider LeadsProvider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		leads:    []*domain.Lead{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchAll substitui a lista mantida pelos leads do provedor, opcionalmente filtrados por status
func (s *Store) FetchAll(ctx context.Context, status *domain.LeadStatus) error {
	if status != nil && !status.IsValid() {
		return domain.NewValidationError("status", "status inválido: "+string(*status))
	}

	s.begin()

	started := time.Now()
	leads, err := s.provider.FetchLeads(ctx, status)
	s.metrics.ObserveFetch("leads", started, err)
	if err != nil {
		return s.fail(errFetchLeads, "leads", err)
	}

	held := make([]*domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead != nil {
			held = append(held, lead.Clone())
		}
	}

	s.mu.Lock()
	s.leads = held
	s.loading = false
	counts := domain.CountLeads(held)
	s.mu.Unlock()

	s.metrics.SetLeadCounts(counts.New, counts.Open, counts.Won)
	logrus.WithFields(logrus.Fields{
		"total":  counts.Total,
		"status": statusField(status),
	}).Info("leads: leads atualizados")

	return nil
}

// FetchOne define o lead selecionado. Um ID inexistente limpa a seleção e retorna nil, nil.
func (s *Store) FetchOne(ctx context.Context, id string) (*domain.Lead, error) {
	s.begin()

	started := time.Now()
	lead, err := s.provider.FetchLead(ctx, id)
	s.metrics.ObserveFetch("lead", started, err)
	if err != nil {
		return nil, s.fail(errFetchLead, "lead", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if lead == nil {
		s.selected = nil
		logrus.WithField("lead_id", id).Debug("leads: lead não encontrado")
		return nil, nil
	}

	s.selected = lead.Clone()
	return lead.Clone(), nil
}

// Assign define o responsável no provedor e depois na lista e no lead selecionado.
// Um ID ausente da lista não altera nada.
func (s *Store) Assign(ctx context.Context, id string, owner string) error {
	err := s.provider.AssignLead(ctx, id, owner)
	s.metrics.ObserveLeadMutation("assign", err)
	if err != nil {
		return s.fail(errAssignLead, "lead", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""

	for _, lead := range s.leads {
		if lead.ID == id {
			lead.AssignOwner(owner)
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected.AssignOwner(owner)
	}

	logrus.WithFields(logrus.Fields{"lead_id": id, "owner": owner}).Info("leads: lead atribuído")
	return nil
}

// SetStatus muda o status sem impor a combinação status/valor: o valor só é gravado em won
// e permanece se o lead voltar para outro status.
func (s *Store) SetStatus(ctx context.Context, id string, status domain.LeadStatus, conversionValue *float64) error {
	if !status.IsValid() {
		return domain.NewValidationError("status", "status inválido: "+string(status))
	}

	err := s.provider.SetLeadStatus(ctx, id, status, conversionValue)
	s.metrics.ObserveLeadMutation("set_status", err)
	if err != nil {
		return s.fail(errUpdateStatus, "lead", err)
	}

	s.mu.Lock()
	s.err = ""
	for _, lead := range s.leads {
		if lead.ID == id {
			lead.ApplyStatus(status, conversionValue)
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected.ApplyStatus(status, conversionValue)
	}
	counts := domain.CountLeads(s.leads)
	s.mu.Unlock()

	s.metrics.SetLeadCounts(counts.New, counts.Open, counts.Won)
	logrus.WithFields(logrus.Fields{"lead_id": id, "status": status}).Info("leads: status atualizado")

	return nil
}

func (s *Store) Leads() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLeads(s.leads, nil)
}

// Filtered aplica o filtro da tela sobre a lista mantida. Status nil equivale a "todos".
func (s *Store) Filtered(status *domain.LeadStatus) []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLeads(s.leads, status)
}

func (s *Store) Counts() domain.LeadCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CountLeads(s.leads)
}

func (s *Store) Selected() *domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.Clone()
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Leads:    cloneLeads(s.leads, nil),
		Selected: s.selected.Clone(),
		Loading:  s.loading,
		Error:    s.err,
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

// fail guarda a mensagem no store e devolve o erro tipado ao chamador
func (s *Store) fail(message, resource string, err error) error {
	s.mu.Lock()
	s.loading = false
	s.err = message
	s.mu.Unlock()

	logrus.WithError(err).Error("leads: " + message)
	return domain.NewFetchError(resource, message, err)
}

func cloneLeads(leads []*domain.Lead, status *domain.LeadStatus) []*domain.Lead {
	cloned := make([]*domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if status != nil && lead.Status != *status {
			continue
		}
		cloned = append(cloned, lead.Clone())
	}
	return cloned
}

func statusField(status *domain.LeadStatus) string {
	if status == nil {
		return "all"
	}
	return string(*status)
}
