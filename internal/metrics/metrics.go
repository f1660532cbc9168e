package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics reúne os coletores Prometheus da API. Um *Metrics nil ignora todas as observações.
type Metrics struct {
	registry *prometheus.Registry

	ProviderFetches  *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
	LeadMutations    *prometheus.CounterVec
	AudienceShifts   prometheus.Counter
	StoreRefreshes   *prometheus.CounterVec
	LeadsByStatus    *prometheus.GaugeVec
	BreakdownRowsNow prometheus.Gauge
}

// New cria os coletores em um registro próprio, evitando colisões entre instâncias
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		ProviderFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_fetches_total",
				Help:      "Total de chamadas aos provedores de insights e leads",
			},
			[]string{"resource", "outcome"},
		),
		ProviderLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_fetch_duration_seconds",
				Help:      "Duração das chamadas aos provedores",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"resource"},
		),
		LeadMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lead_mutations_total",
				Help:      "Total de atribuições e mudanças de status de leads",
			},
			[]string{"operation", "outcome"},
		),
		AudienceShifts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audience_shifts_applied_total",
				Help:      "Total de propostas de segmentação aplicadas",
			},
		),
		StoreRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_refreshes_total",
				Help:      "Total de atualizações agendadas ou manuais dos stores",
			},
			[]string{"store", "trigger"},
		),
		LeadsByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "leads_held",
				Help:      "Leads mantidos no store por status",
			},
			[]string{"status"},
		),
		BreakdownRowsNow: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "breakdown_rows_held",
				Help:      "Linhas de breakdown mantidas no store de insights",
			},
		),
	}

	registry.MustRegister(
		m.ProviderFetches,
		m.ProviderLatency,
		m.LeadMutations,
		m.AudienceShifts,
		m.StoreRefreshes,
		m.LeadsByStatus,
		m.BreakdownRowsNow,
	)

	return m
}

// Handler expõe o registro no formato de texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveFetch(resource string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.ProviderFetches.WithLabelValues(resource, outcome(err)).Inc()
	m.ProviderLatency.WithLabelValues(resource).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveLeadMutation(operation string, err error) {
	if m == nil {
		return
	}
	m.LeadMutations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) ObserveAudienceShift() {
	if m == nil {
		return
	}
	m.AudienceShifts.Inc()
}

func (m *Metrics) ObserveRefresh(store, trigger string) {
	if m == nil {
		return
	}
	m.StoreRefreshes.WithLabelValues(store, trigger).Inc()
}

func (m *Metrics) SetLeadCounts(newCount, openCount, wonCount int) {
	if m == nil {
		return
	}
	m.LeadsByStatus.WithLabelValues("new").Set(float64(newCount))
	m.LeadsByStatus.WithLabelValues("open").Set(float64(openCount))
	m.LeadsByStatus.WithLabelValues("won").Set(float64(wonCount))
}

func (m *Metrics) SetBreakdownRows(n int) {
	if m == nil {
		return
	}
	m.BreakdownRowsNow.Set(float64(n))
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
