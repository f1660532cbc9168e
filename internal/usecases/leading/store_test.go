package leading_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading/mocks"
	"go.uber.org/mock/gomock"
)

func newFixtureStore() *leading.Store {
	return leading.NewStore(whatsapp.NewMockProviderWithLeads(whatsapp.FixtureLeads(), whatsapp.Latency{}))
}

func statusPtr(s domain.LeadStatus) *domain.LeadStatus {
	return &s
}

func TestStore_FetchAllWithFixture(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore()

	require.NoError(t, store.FetchAll(ctx, nil))
	assert.Len(t, store.Leads(), 8)
	assert.Equal(t, domain.LeadCounts{Total: 8, New: 4, Open: 3, Won: 1}, store.Counts())

	won := store.Filtered(statusPtr(domain.LeadStatusWon))
	require.Len(t, won, 1)
	require.NotNil(t, won[0].ConversionValue)
	assert.Equal(t, 1500.0, *won[0].ConversionValue)

	require.NoError(t, store.FetchAll(ctx, statusPtr(domain.LeadStatusWon)))
	leads := store.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, "lead_903", leads[0].ID)
	assert.Equal(t, 1500.0, *leads[0].ConversionValue)
}

func TestStore_FetchAllInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// O provedor não deve ser chamado com status inválido
	provider := mocks.NewMockLeadsProvider(ctrl)
	store := leading.NewStore(provider)

	err := store.FetchAll(context.Background(), statusPtr("lost"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestStore_ProviderFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	boom := errors.New("conexão recusada")

	tests := []struct {
		name    string
		setup   func(provider *mocks.MockLeadsProvider)
		run     func(store *leading.Store) error
		message string
	}{
		{
			name: "Falha ao listar leads",
			setup: func(provider *mocks.MockLeadsProvider) {
				provider.EXPECT().FetchLeads(gomock.Any(), gomock.Nil()).Return(nil, boom)
			},
			run: func(store *leading.Store) error {
				return store.FetchAll(ctx, nil)
			},
			message: "Erro ao buscar leads",
		},
		{
			name: "Falha ao buscar um lead",
			setup: func(provider *mocks.MockLeadsProvider) {
				provider.EXPECT().FetchLead(gomock.Any(), "lead_901").Return(nil, boom)
			},
			run: func(store *leading.Store) error {
				_, err := store.FetchOne(ctx, "lead_901")
				return err
			},
			message: "Erro ao buscar lead",
		},
		{
			name: "Falha ao atribuir lead",
			setup: func(provider *mocks.MockLeadsProvider) {
				provider.EXPECT().AssignLead(gomock.Any(), "lead_901", "Ana Silva").Return(boom)
			},
			run: func(store *leading.Store) error {
				return store.Assign(ctx, "lead_901", "Ana Silva")
			},
			message: "Erro ao atribuir lead",
		},
		{
			name: "Falha ao atualizar status",
			setup: func(provider *mocks.MockLeadsProvider) {
				provider.EXPECT().SetLeadStatus(gomock.Any(), "lead_901", domain.LeadStatusOpen, gomock.Nil()).Return(boom)
			},
			run: func(store *leading.Store) error {
				return store.SetStatus(ctx, "lead_901", domain.LeadStatusOpen, nil)
			},
			message: "Erro ao atualizar status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockLeadsProvider(ctrl)
			tt.setup(provider)
			store := leading.NewStore(provider)

			err := tt.run(store)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrFetch))
			assert.True(t, errors.Is(err, boom))

			state := store.State()
			assert.False(t, state.Loading)
			assert.Equal(t, tt.message, state.Error)
		})
	}
}

func TestStore_FetchOne(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore()

	lead, err := store.FetchOne(ctx, "lead_902")
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, "lead_902", store.Selected().ID)

	missing, err := store.FetchOne(ctx, "lead_999")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Nil(t, store.Selected())
}

func TestStore_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("Lead existente - deve atualizar lista e selecionado", func(t *testing.T) {
		store := newFixtureStore()
		require.NoError(t, store.FetchAll(ctx, nil))
		_, err := store.FetchOne(ctx, "lead_901")
		require.NoError(t, err)

		require.NoError(t, store.Assign(ctx, "lead_901", "Bruna Costa"))

		for _, lead := range store.Leads() {
			if lead.ID == "lead_901" {
				require.NotNil(t, lead.Owner)
				assert.Equal(t, "Bruna Costa", *lead.Owner)
			}
		}
		require.NotNil(t, store.Selected().Owner)
		assert.Equal(t, "Bruna Costa", *store.Selected().Owner)
	})

	t.Run("Lead inexistente - lista permanece inalterada", func(t *testing.T) {
		store := newFixtureStore()
		require.NoError(t, store.FetchAll(ctx, nil))
		before := store.Leads()

		require.NoError(t, store.Assign(ctx, "lead_999", "Bruna Costa"))

		assert.Equal(t, before, store.Leads())
	})
}

func TestStore_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Won com 1500 e depois open - valor permanece", func(t *testing.T) {
		store := newFixtureStore()
		require.NoError(t, store.FetchAll(ctx, nil))
		value := 1500.0

		require.NoError(t, store.SetStatus(ctx, "lead_901", domain.LeadStatusWon, &value))

		lead, err := store.FetchOne(ctx, "lead_901")
		require.NoError(t, err)
		assert.Equal(t, domain.LeadStatusWon, lead.Status)
		require.NotNil(t, lead.ConversionValue)
		assert.Equal(t, 1500.0, *lead.ConversionValue)
		assert.Equal(t, 2, store.Counts().Won)

		require.NoError(t, store.SetStatus(ctx, "lead_901", domain.LeadStatusOpen, nil))

		lead, err = store.FetchOne(ctx, "lead_901")
		require.NoError(t, err)
		assert.Equal(t, domain.LeadStatusOpen, lead.Status)
		require.NotNil(t, lead.ConversionValue)
		assert.Equal(t, 1500.0, *lead.ConversionValue)
		assert.Equal(t, 0.0, lead.RecognizedConversionValue())
	})

	t.Run("Status inválido - deve rejeitar antes do provedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := leading.NewStore(mocks.NewMockLeadsProvider(ctrl))
		err := store.SetStatus(ctx, "lead_901", domain.LeadStatus("lost"), nil)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
