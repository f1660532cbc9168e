package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseLeadStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *LeadStatus
		wantErr bool
	}{
		{name: "vazio não filtra", raw: "", want: nil},
		{name: "all não filtra", raw: "all", want: nil},
		{name: "status conhecido", raw: "won", want: ptr(LeadStatusWon)},
		{name: "status desconhecido", raw: "lost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLeadStatus(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLead_ApplyStatus(t *testing.T) {
	tests := []struct {
		name      string
		initial   *float64
		status    LeadStatus
		value     *float64
		wantValue *float64
	}{
		{name: "ganho com valor positivo grava", status: LeadStatusWon, value: ptr(1500.0), wantValue: ptr(1500.0)},
		{name: "ganho sem valor não grava", status: LeadStatusWon, value: nil, wantValue: nil},
		{name: "ganho com zero não grava", status: LeadStatusWon, value: ptr(0.0), wantValue: nil},
		{name: "aberto ignora valor", status: LeadStatusOpen, value: ptr(300.0), wantValue: nil},
		{name: "sair de ganho mantém valor anterior", initial: ptr(800.0), status: LeadStatusOpen, wantValue: ptr(800.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := &Lead{ID: "lead_1", Status: LeadStatusNew, ConversionValue: tt.initial}
			lead.ApplyStatus(tt.status, tt.value)

			assert.Equal(t, tt.status, lead.Status)
			assert.Equal(t, tt.wantValue, lead.ConversionValue)
		})
	}
}

func TestLead_RecognizedConversionValue(t *testing.T) {
	open := &Lead{Status: LeadStatusOpen, ConversionValue: ptr(800.0)}
	won := &Lead{Status: LeadStatusWon, ConversionValue: ptr(800.0)}

	assert.Zero(t, open.RecognizedConversionValue())
	assert.Equal(t, 800.0, won.RecognizedConversionValue())
}

func TestLead_Attribution(t *testing.T) {
	tests := []struct {
		name string
		lead *Lead
		want Attribution
	}{
		{
			name: "referral tem prioridade sobre ad_id",
			lead: &Lead{
				Referral:   &Referral{SourceType: "ads", SourceID: "3201"},
				AdID:       ptr("9999"),
				AdsetID:    ptr("2200"),
				CampaignID: ptr("1200"),
				CTWAClid:   ptr("CLID-abc-123"),
			},
			want: Attribution{Source: AttributionReferral, AdID: "3201", AdsetID: "2200", CampaignID: "1200", CTWAClid: "CLID-abc-123"},
		},
		{
			name: "sem referral usa ad_id",
			lead: &Lead{AdID: ptr("3203"), AdsetID: ptr("2202")},
			want: Attribution{Source: AttributionAdID, AdID: "3203", AdsetID: "2202"},
		},
		{
			name: "referral sem source_id usa ad_id",
			lead: &Lead{Referral: &Referral{SourceType: "ads"}, AdID: ptr("3204")},
			want: Attribution{Source: AttributionAdID, AdID: "3204"},
		},
		{
			name: "sem origem",
			lead: &Lead{},
			want: Attribution{Source: AttributionUnattributed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lead.Attribution())
		})
	}
}

func TestLead_Clone(t *testing.T) {
	original := &Lead{
		ID:              "lead_1",
		Referral:        &Referral{SourceID: "3201", ImageURL: ptr("https://picsum.photos/seed/a/600/400")},
		Owner:           ptr("Ana Silva"),
		ConversionValue: ptr(100.0),
		CreatedTime:     time.Date(2025, 11, 5, 14, 21, 0, 0, time.UTC),
	}

	clone := original.Clone()
	clone.Referral.SourceID = "0000"
	*clone.Referral.ImageURL = "alterada"
	*clone.Owner = "Carlos Santos"
	*clone.ConversionValue = 1

	assert.Equal(t, "3201", original.Referral.SourceID)
	assert.Equal(t, "https://picsum.photos/seed/a/600/400", *original.Referral.ImageURL)
	assert.Equal(t, "Ana Silva", *original.Owner)
	assert.Equal(t, 100.0, *original.ConversionValue)
	assert.Nil(t, (*Lead)(nil).Clone())
}

func TestCountLeads(t *testing.T) {
	leads := []*Lead{
		{Status: LeadStatusNew},
		{Status: LeadStatusNew},
		{Status: LeadStatusOpen},
		{Status: LeadStatusWon},
	}

	assert.Equal(t, LeadCounts{Total: 4, New: 2, Open: 1, Won: 1}, CountLeads(leads))
	assert.Equal(t, LeadCounts{}, CountLeads(nil))
}

func TestErrors(t *testing.T) {
	fetchErr := NewFetchError("leads", "Erro ao buscar leads", errors.New("conexão recusada"))

	assert.True(t, errors.Is(fetchErr, ErrFetch))
	assert.False(t, errors.Is(fetchErr, ErrValidation))
	assert.Equal(t, "Erro ao buscar leads: conexão recusada", fetchErr.Error())

	validationErr := NewValidationError("status", "status inválido")
	assert.True(t, errors.Is(validationErr, ErrValidation))
	assert.False(t, errors.Is(validationErr, ErrFetch))
}
