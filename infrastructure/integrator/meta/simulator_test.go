package meta

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func simulatorFilters(since, until time.Time) domain.InsightsFilters {
	return domain.InsightsFilters{
		AccountID:  "act_123456789",
		Since:      since,
		Until:      until,
		Level:      domain.InsightLevelAdset,
		Breakdowns: []string{"age", "gender", "publisher_platform"},
	}
}

func newTestSimulator(seed uint64) *Simulator {
	return NewSimulator(&config.Config{}, WithSeed(seed), WithClock(func() time.Time {
		return time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC)
	}))
}

func TestSimulator_Series(t *testing.T) {
	tests := []struct {
		name         string
		since, until time.Time
		expectedDays int
	}{
		{name: "Um único dia", since: day(2025, 11, 5), until: day(2025, 11, 5), expectedDays: 1},
		{name: "Últimos 30 dias", since: day(2025, 10, 6), until: day(2025, 11, 5), expectedDays: 31},
		{name: "Virada de ano", since: day(2024, 12, 30), until: day(2025, 1, 2), expectedDays: 4},
		{name: "Fevereiro bissexto", since: day(2024, 2, 27), until: day(2024, 3, 1), expectedDays: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestSimulator(42).FetchInsights(context.Background(), simulatorFilters(tt.since, tt.until))
			require.NoError(t, err)

			require.Len(t, result.TimeSeries, tt.expectedDays)
			assert.Equal(t, tt.since.Format(time.DateOnly), result.TimeSeries[0].Date)
			assert.Equal(t, tt.until.Format(time.DateOnly), result.TimeSeries[len(result.TimeSeries)-1].Date)

			for i := 1; i < len(result.TimeSeries); i++ {
				assert.Less(t, result.TimeSeries[i-1].Date, result.TimeSeries[i].Date)
			}

			for _, point := range result.TimeSeries {
				assert.GreaterOrEqual(t, point.Impressions, 20000)
				assert.Less(t, point.Impressions, 30000)
				assert.GreaterOrEqual(t, point.Clicks, 600)
				assert.Less(t, point.Clicks, 1000)
				assert.GreaterOrEqual(t, point.Conversations, 40)
				assert.Less(t, point.Conversations, 70)
			}
		})
	}
}

func TestSimulator_InvalidRange(t *testing.T) {
	_, err := newTestSimulator(1).FetchInsights(context.Background(), simulatorFilters(day(2025, 11, 5), day(2025, 11, 4)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSimulator_KPIs(t *testing.T) {
	result, err := newTestSimulator(7).FetchInsights(context.Background(), simulatorFilters(day(2025, 10, 6), day(2025, 11, 5)))
	require.NoError(t, err)

	impressions, clicks, conversations := 0, 0, 0
	for _, point := range result.TimeSeries {
		impressions += point.Impressions
		clicks += point.Clicks
		conversations += point.Conversations
	}

	kpis := result.KPIs
	assert.Equal(t, impressions, kpis.Impressions)
	assert.Equal(t, clicks, kpis.Clicks)
	assert.Equal(t, int(math.Floor(float64(impressions)*0.75)), kpis.Reach)
	assert.InDelta(t, float64(clicks)/float64(impressions)*100, kpis.CTR, 0.005)
	assert.GreaterOrEqual(t, kpis.CPC, 0.5)
	assert.LessOrEqual(t, kpis.CPC, 1.5)
	assert.InDelta(t, float64(clicks)*kpis.CPC, kpis.Spend, 0.005)
	assert.Equal(t, conversations, kpis.Conversions)
	assert.Equal(t, time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC), result.UpdatedAt)
}

func TestBuildKPIs_EmptySeries(t *testing.T) {
	kpis := buildKPIs(rand.New(rand.NewPCG(1, 1)), nil)

	assert.Equal(t, 0, kpis.Impressions)
	assert.Equal(t, 0.0, kpis.CTR)
	assert.Equal(t, 0.0, kpis.CPC)
	assert.Equal(t, 0.0, kpis.Spend)
	assert.Equal(t, 0.0, kpis.CostPerConversion)
	assert.Equal(t, 0.0, kpis.ConversionRate)
}

func TestBuildBreakdown(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 2025} {
		rows := buildBreakdown(rand.New(rand.NewPCG(seed, seed)))
		// O mesmo gerador reproduz os valores de base na mesma ordem
		twin := rand.New(rand.NewPCG(seed, seed))

		require.Len(t, rows, 36)
		for _, row := range rows {
			baseline := drawBaseline(twin)

			assert.InDelta(t, float64(row.Clicks)/float64(row.Impressions)*100, row.CTR, 0.005, "ctr %s/%s/%s", row.Age, row.Gender, row.Placement)
			assert.Equal(t, int(math.Floor(float64(row.Impressions)*0.75)), row.Reach)
			assert.GreaterOrEqual(t, row.Impressions, row.Clicks)

			if domain.IsFavoredAge(row.Age) {
				assert.Equal(t, float64(baseline.Impressions)*1.5, float64(row.Impressions))
				assert.Equal(t, float64(baseline.Clicks)*1.5, float64(row.Clicks))
				assert.Equal(t, baseline.CPC/1.5, row.CPC)
			} else {
				assert.Equal(t, baseline.Impressions, row.Impressions)
				assert.Equal(t, baseline.Clicks, row.Clicks)
				assert.Equal(t, baseline.CPC, row.CPC)
			}
		}
	}
}

func TestBuildBreakdown_CrossProduct(t *testing.T) {
	rows := buildBreakdown(rand.New(rand.NewPCG(9, 9)))

	seen := make(map[string]bool)
	for _, row := range rows {
		seen[row.Age+"|"+row.Gender+"|"+row.Placement] = true
	}

	for _, age := range ageGroups {
		for _, gender := range genders {
			for _, placement := range placements {
				assert.True(t, seen[age+"|"+gender+"|"+placement], "%s/%s/%s", age, gender, placement)
			}
		}
	}
}

func TestSimulator_ContextCanceled(t *testing.T) {
	simulator := NewSimulator(&config.Config{}, WithSeed(1), WithLatency(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulator.FetchInsights(ctx, simulatorFilters(day(2025, 11, 1), day(2025, 11, 5)))
	assert.ErrorIs(t, err, context.Canceled)
}
