package meta

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

// Fator aplicado às faixas etárias favorecidas pela simulação
const favoredBoost = 1.5

var (
	ageGroups  = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	genders    = []string{"male", "female"}
	placements = []string{"feed", "story", "reels"}
)

// Simulator gera insights sintéticos no formato da Marketing API
type Simulator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	latency time.Duration
	now     func() time.Time
}

type SimulatorOption func(*Simulator)

// WithSeed torna a geração reproduzível
func WithSeed(seed uint64) SimulatorOption {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

func WithLatency(latency time.Duration) SimulatorOption {
	return func(s *Simulator) {
		s.latency = latency
	}
}

func WithClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) {
		s.now = now
	}
}

func NewSimulator(cfg *config.Config, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		latency: cfg.MockLatency.Insights,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchInsights gera KPIs, uma linha de série por dia de [since, until] e o breakdown completo
// idade x gênero x posicionamento. Só falha com intervalo inválido ou contexto cancelado.
func (s *Simulator) FetchInsights(ctx context.Context, filters domain.InsightsFilters) (*domain.InsightsResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	if err := utils.Delay(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	series := buildSeries(s.rng, filters.Days())
	kpis := buildKPIs(s.rng, series)
	rows := buildBreakdown(s.rng)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"account_id": filters.AccountID,
		"since":      filters.Since.Format(time.DateOnly),
		"until":      filters.Until.Format(time.DateOnly),
		"days":       len(series),
	}).Debug("insights: insights simulados gerados")

	return &domain.InsightsResult{
		KPIs:          kpis,
		TimeSeries:    series,
		BreakdownRows: rows,
		UpdatedAt:     s.now(),
	}, nil
}

func buildSeries(rng *rand.Rand, days []time.Time) []domain.TimeSeriesData {
	series := make([]domain.TimeSeriesData, 0, len(days))
	for _, day := range days {
		series = append(series, domain.TimeSeriesData{
			Date:          day.Format(time.DateOnly),
			Impressions:   20000 + rng.IntN(10000),
			Clicks:        600 + rng.IntN(400),
			Conversations: 40 + rng.IntN(30),
		})
	}
	return series
}

func buildKPIs(rng *rand.Rand, series []domain.TimeSeriesData) domain.InsightMetrics {
	var kpis domain.InsightMetrics
	conversations := 0
	for _, day := range series {
		kpis.Impressions += day.Impressions
		kpis.Clicks += day.Clicks
		conversations += day.Conversations
	}

	// O CPC é sorteado numa faixa fixa; o investimento deriva dele
	cpc := utils.RoundWithTwoDecimalPlace(rng.Float64() + 0.5)

	kpis.Reach = int(math.Floor(float64(kpis.Impressions) * 0.75))
	kpis.CTR = utils.RoundWithTwoDecimalPlace(domain.CTR(kpis.Clicks, kpis.Impressions))
	if kpis.Clicks > 0 {
		kpis.CPC = cpc
		kpis.Spend = utils.RoundWithTwoDecimalPlace(float64(kpis.Clicks) * cpc)
	}
	kpis.FillConversionMetrics(conversations)

	return kpis
}

// segmentBaseline são os valores sorteados de um segmento antes do boost
type segmentBaseline struct {
	Impressions int
	Clicks      int
	CPC         float64
}

// drawBaseline sorteia impressões e cliques pares, para que o boost de 1.5x resulte em inteiros exatos
func drawBaseline(rng *rand.Rand) segmentBaseline {
	impressions := 2 * (500 + rng.IntN(2500))
	rate := rng.Float64()*0.05 + 0.02
	clicks := 2 * int(math.Floor(float64(impressions)*rate/2))

	return segmentBaseline{
		Impressions: impressions,
		Clicks:      clicks,
		CPC:         rng.Float64()*1.5 + 0.4,
	}
}

func (b segmentBaseline) row(age, gender, placement string) domain.BreakdownRow {
	impressions, clicks, cpc := b.Impressions, b.Clicks, b.CPC
	if domain.IsFavoredAge(age) {
		impressions = impressions * 3 / 2
		clicks = clicks * 3 / 2
		cpc = cpc / favoredBoost
	}

	// cliques x CPC é invariante ao boost
	spend := utils.RoundWithTwoDecimalPlace(float64(b.Clicks) * b.CPC)

	return domain.BreakdownRow{
		Age:       age,
		Gender:    gender,
		Placement: placement,
		InsightMetrics: domain.InsightMetrics{
			Impressions: impressions,
			Reach:       int(math.Floor(float64(impressions) * 0.75)),
			Clicks:      clicks,
			CTR:         utils.RoundWithTwoDecimalPlace(domain.CTR(clicks, impressions)),
			CPC:         cpc,
			Spend:       spend,
		},
	}
}

func buildBreakdown(rng *rand.Rand) []domain.BreakdownRow {
	rows := make([]domain.BreakdownRow, 0, len(ageGroups)*len(genders)*len(placements))
	for _, age := range ageGroups {
		for _, gender := range genders {
			for _, placement := range placements {
				rows = append(rows, drawBaseline(rng).row(age, gender, placement))
			}
		}
	}
	return rows
}
