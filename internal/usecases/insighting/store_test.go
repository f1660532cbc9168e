package insighting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 11, 5, 14, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Insights: config.Insights{
			DefaultAccountID:  "act_123456789",
			LookbackDays:      30,
			DefaultLevel:      "adset",
			DefaultBreakdowns: []string{"age", "gender", "publisher_platform"},
			DefaultObjective:  "all",
		},
	}
}

func newStore(provider insighting.InsightsProvider) *insighting.Store {
	return insighting.NewStore(testConfig(), provider, insighting.WithClock(func() time.Time { return fixedNow }))
}

func sampleResult() *domain.InsightsResult {
	return &domain.InsightsResult{
		KPIs: domain.InsightMetrics{Impressions: 1000, Reach: 750, Clicks: 50, CTR: 5, CPC: 1, Spend: 50},
		TimeSeries: []domain.TimeSeriesData{
			{Date: "2025-11-04", Impressions: 400, Clicks: 20, Conversations: 3},
			{Date: "2025-11-05", Impressions: 600, Clicks: 30, Conversations: 4},
		},
		BreakdownRows: []domain.BreakdownRow{
			{Age: "18-24", Gender: "male", Placement: "feed", InsightMetrics: domain.InsightMetrics{Impressions: 100, Clicks: 2, CTR: 2}},
			{Age: "35-44", Gender: "female", Placement: "feed", InsightMetrics: domain.InsightMetrics{Impressions: 150, Clicks: 9, CTR: 6}},
			{Age: "45-54", Gender: "male", Placement: "reels", InsightMetrics: domain.InsightMetrics{Impressions: 150, Clicks: 6, CTR: 4}},
		},
		UpdatedAt: time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC),
	}
}

func TestNewStore_DefaultFilters(t *testing.T) {
	store := newStore(nil)

	filters := store.Filters()
	assert.Equal(t, "act_123456789", filters.AccountID)
	assert.Equal(t, time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), filters.Since)
	assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), filters.Until)
	assert.Equal(t, domain.InsightLevelAdset, filters.Level)
	assert.Equal(t, []string{"age", "gender", "publisher_platform"}, filters.Breakdowns)
	require.NotNil(t, filters.CampaignObjective)
	assert.Equal(t, domain.ObjectiveAll, *filters.CampaignObjective)

	snapshot := store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Empty(t, snapshot.Error)
	assert.Nil(t, snapshot.LastUpdated)
	assert.Empty(t, snapshot.Series)
	assert.Empty(t, snapshot.BreakdownRows)
}

func TestStore_SetFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidLevel := domain.InsightLevel("account")
	invalidObjective := domain.CampaignObjective("leads")
	level := domain.InsightLevelCampaign
	since := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	accountID := "act_987654321"

	tests := []struct {
		name     string
		patch    domain.FiltersPatch
		wantErr  bool
		validate func(t *testing.T, before, after domain.InsightsFilters)
	}{
		{
			name:  "Patch parcial - deve alterar apenas os campos informados",
			patch: domain.FiltersPatch{AccountID: &accountID, Level: &level},
			validate: func(t *testing.T, before, after domain.InsightsFilters) {
				assert.Equal(t, accountID, after.AccountID)
				assert.Equal(t, domain.InsightLevelCampaign, after.Level)
				assert.Equal(t, before.Since, after.Since)
				assert.Equal(t, before.Until, after.Until)
				assert.Equal(t, before.Breakdowns, after.Breakdowns)
			},
		},
		{
			name:    "Nível inválido - deve rejeitar e manter filtros",
			patch:   domain.FiltersPatch{Level: &invalidLevel},
			wantErr: true,
			validate: func(t *testing.T, before, after domain.InsightsFilters) {
				assert.Equal(t, before, after)
			},
		},
		{
			name:    "Objetivo inválido - deve rejeitar e manter filtros",
			patch:   domain.FiltersPatch{CampaignObjective: &invalidObjective},
			wantErr: true,
			validate: func(t *testing.T, before, after domain.InsightsFilters) {
				assert.Equal(t, before, after)
			},
		},
		{
			name:    "Início posterior ao fim - deve rejeitar",
			patch:   domain.FiltersPatch{Since: &since, Until: &until},
			wantErr: true,
			validate: func(t *testing.T, before, after domain.InsightsFilters) {
				assert.Equal(t, before, after)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma chamada ao provedor é esperada: SetFilters não dispara busca
			provider := mocks.NewMockInsightsProvider(ctrl)
			store := newStore(provider)
			before := store.Filters()

			_, err := store.SetFilters(tt.patch)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
			} else {
				require.NoError(t, err)
			}

			tt.validate(t, before, store.Filters())
		})
	}
}

func TestStore_FetchInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Busca com sucesso - deve substituir KPIs, série e breakdown", func(t *testing.T) {
		provider := mocks.NewMockInsightsProvider(ctrl)
		store := newStore(provider)
		filters := store.Filters()

		provider.EXPECT().
			FetchInsights(gomock.Any(), filters).
			Return(sampleResult(), nil)

		require.NoError(t, store.FetchInsights(context.Background()))

		snapshot := store.Snapshot()
		assert.False(t, snapshot.Loading)
		assert.Empty(t, snapshot.Error)
		assert.Equal(t, 1000, snapshot.KPIs.Impressions)
		assert.Len(t, snapshot.Series, 2)
		assert.Len(t, snapshot.BreakdownRows, 3)
		require.NotNil(t, snapshot.LastUpdated)
		assert.Equal(t, time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC), *snapshot.LastUpdated)
	})

	t.Run("Falha do provedor - deve guardar a mensagem de erro", func(t *testing.T) {
		provider := mocks.NewMockInsightsProvider(ctrl)
		store := newStore(provider)

		provider.EXPECT().
			FetchInsights(gomock.Any(), gomock.Any()).
			Return(sampleResult(), nil)
		require.NoError(t, store.FetchInsights(context.Background()))

		provider.EXPECT().
			FetchInsights(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		err := store.FetchInsights(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFetch))

		snapshot := store.Snapshot()
		assert.False(t, snapshot.Loading)
		assert.Equal(t, "Erro ao buscar insights", snapshot.Error)
		// Os dados anteriores continuam disponíveis
		assert.Len(t, snapshot.BreakdownRows, 3)
	})

	t.Run("Provedor sem resultado - deve tratar como falha", func(t *testing.T) {
		provider := mocks.NewMockInsightsProvider(ctrl)
		store := newStore(provider)

		provider.EXPECT().
			FetchInsights(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := store.FetchInsights(context.Background())
		assert.True(t, errors.Is(err, domain.ErrFetch))
		assert.Equal(t, "Erro ao buscar insights", store.Snapshot().Error)
	})

	t.Run("Nova busca com sucesso - deve limpar o erro anterior", func(t *testing.T) {
		provider := mocks.NewMockInsightsProvider(ctrl)
		store := newStore(provider)

		gomock.InOrder(
			provider.EXPECT().FetchInsights(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")),
			provider.EXPECT().FetchInsights(gomock.Any(), gomock.Any()).Return(sampleResult(), nil),
		)

		require.Error(t, store.FetchInsights(context.Background()))
		require.NoError(t, store.FetchInsights(context.Background()))
		assert.Empty(t, store.Snapshot().Error)
	})
}

func TestStore_BreakdownAndAgeRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockInsightsProvider(ctrl)
	provider.EXPECT().FetchInsights(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	store := newStore(provider)
	require.NoError(t, store.FetchInsights(context.Background()))

	assert.Len(t, store.Breakdown(domain.AudienceAll), 3)

	favored := store.Breakdown(domain.Audience35To55)
	require.Len(t, favored, 2)
	for _, row := range favored {
		assert.True(t, domain.IsFavoredAge(row.Age))
	}

	rollup := store.AgeRollup()
	require.Len(t, rollup, 3)
	assert.Equal(t, "35-44", rollup[0].Age)
	assert.Equal(t, 6.0, rollup[0].CTR)
	assert.Equal(t, "18-24", rollup[2].Age)
}
