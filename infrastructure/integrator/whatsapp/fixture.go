package whatsapp

import (
	"time"

	"github.com/vfg2006/f-engage-api/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func referral(sourceID, headline, body, image string) *domain.Referral {
	return &domain.Referral{
		SourceType: "ads",
		SourceID:   sourceID,
		Headline:   headline,
		Body:       body,
		ImageURL:   ptr("https://picsum.photos/seed/" + image + "/600/400"),
	}
}

// FixtureLeads devolve os oito leads CTWA de demonstração. Cada chamada cria cópias novas.
func FixtureLeads() []*domain.Lead {
	return []*domain.Lead{
		{
			ID:           "lead_901",
			Phone:        "+55 11 99999-0000",
			FirstMessage: "Olá! Quero saber sobre o evento de negociação.",
			Referral:     referral("3201", "Workshop Brasil Card", "Negociação e orientação financeira, vagas limitadas", "cta1"),
			CTWAClid:     ptr("CLID-abc-123"),
			CampaignID:   ptr("1200"),
			AdsetID:      ptr("2200"),
			AdID:         ptr("3201"),
			Score:        78,
			Status:       domain.LeadStatusNew,
			CreatedTime:  time.Date(2025, 11, 5, 14, 21, 0, 0, time.UTC),
		},
		{
			ID:           "lead_902",
			Phone:        "+55 11 98888-1111",
			FirstMessage: "Gostaria de participar do workshop",
			Referral:     referral("3202", "Orientação Financeira Gratuita", "Aprenda a organizar suas finanças", "cta2"),
			CTWAClid:     ptr("CLID-def-456"),
			CampaignID:   ptr("1200"),
			AdsetID:      ptr("2201"),
			AdID:         ptr("3202"),
			Score:        85,
			Status:       domain.LeadStatusOpen,
			Owner:        ptr("Ana Silva"),
			CreatedTime:  time.Date(2025, 11, 5, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:              "lead_903",
			Phone:           "+55 11 97777-2222",
			FirstMessage:    "Oi, vi o anúncio e tenho interesse",
			Referral:        referral("3203", "Brasil Card - Evento Especial", "Exclusivo para clientes premium", "cta3"),
			CampaignID:      ptr("1201"),
			AdsetID:         ptr("2202"),
			AdID:            ptr("3203"),
			Score:           92,
			Status:          domain.LeadStatusWon,
			Owner:           ptr("Carlos Santos"),
			CreatedTime:     time.Date(2025, 11, 4, 10, 15, 0, 0, time.UTC),
			ConversionValue: ptr(1500.0),
		},
		{
			ID:           "lead_904",
			Phone:        "+55 11 96666-3333",
			FirstMessage: "Olá, preciso de ajuda financeira",
			Score:        65,
			Status:       domain.LeadStatusNew,
			CreatedTime:  time.Date(2025, 11, 5, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:           "lead_905",
			Phone:        "+55 11 95555-4444",
			FirstMessage: "Tenho interesse no evento",
			Referral:     referral("3204", "Workshop Brasil Card", "Negociação e orientação financeira, vagas limitadas", "cta4"),
			CTWAClid:     ptr("CLID-ghi-789"),
			CampaignID:   ptr("1200"),
			AdsetID:      ptr("2200"),
			AdID:         ptr("3204"),
			Score:        71,
			Status:       domain.LeadStatusNew,
			CreatedTime:  time.Date(2025, 11, 5, 17, 0, 0, 0, time.UTC),
		},
		{
			ID:           "lead_906",
			Phone:        "+55 11 94444-5555",
			FirstMessage: "Vi no Instagram e gostei",
			Referral:     referral("3205", "Aprenda a Negociar Dívidas", "Workshop gratuito - Brasil Card", "cta5"),
			CampaignID:   ptr("1200"),
			AdsetID:      ptr("2200"),
			AdID:         ptr("3205"),
			Score:        88,
			Status:       domain.LeadStatusOpen,
			Owner:        ptr("Ana Silva"),
			CreatedTime:  time.Date(2025, 11, 5, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:           "lead_907",
			Phone:        "+55 11 93333-6666",
			FirstMessage: "Quero mais informações",
			Score:        55,
			Status:       domain.LeadStatusNew,
			CreatedTime:  time.Date(2025, 11, 5, 18, 20, 0, 0, time.UTC),
		},
		{
			ID:           "lead_908",
			Phone:        "+55 11 92222-7777",
			FirstMessage: "Estou interessado no workshop",
			Referral:     referral("3206", "Brasil Card Premium", "Benefícios exclusivos para você", "cta6"),
			CTWAClid:     ptr("CLID-jkl-012"),
			CampaignID:   ptr("1201"),
			AdsetID:      ptr("2203"),
			AdID:         ptr("3206"),
			Score:        82,
			Status:       domain.LeadStatusOpen,
			Owner:        ptr("Carlos Santos"),
			CreatedTime:  time.Date(2025, 11, 4, 14, 50, 0, 0, time.UTC),
		},
	}
}
