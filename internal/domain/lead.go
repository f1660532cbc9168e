package domain

import (
	"time"
)

type LeadStatus string

const (
	LeadStatusNew  LeadStatus = "new"
	LeadStatusOpen LeadStatus = "open"
	LeadStatusWon  LeadStatus = "won"
)

// AllLeadStatus lista os estados válidos do ciclo de vida de um lead
var AllLeadStatus = []LeadStatus{LeadStatusNew, LeadStatusOpen, LeadStatusWon}

// IsValid indica se o status pertence ao ciclo new -> open -> won
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusOpen, LeadStatusWon:
		return true
	}
	return false
}

// ParseLeadStatus converte a string recebida em um LeadStatus.
// String vazia significa "sem filtro" e retorna nil.
func ParseLeadStatus(raw string) (*LeadStatus, error) {
	if raw == "" || raw == "all" {
		return nil, nil
	}

	status := LeadStatus(raw)
	if !status.IsValid() {
		return nil, NewValidationError("status", "status inválido: "+raw)
	}

	return &status, nil
}

// Referral é o payload de origem enviado pelo WhatsApp na primeira mensagem de um clique em anúncio
type Referral struct {
	SourceType string  `json:"source_type"`
	SourceID   string  `json:"source_id"`
	Headline   string  `json:"headline"`
	Body       string  `json:"body"`
	ImageURL   *string `json:"image_url,omitempty"`
}

type Lead struct {
	ID              string     `json:"id"`
	Phone           string     `json:"wa_phone"`
	FirstMessage    string     `json:"first_message"`
	Referral        *Referral  `json:"referral,omitempty"`
	CTWAClid        *string    `json:"ctwa_clid,omitempty"`
	CampaignID      *string    `json:"campaign_id,omitempty"`
	AdsetID         *string    `json:"adset_id,omitempty"`
	AdID            *string    `json:"ad_id,omitempty"`
	Score           int        `json:"score"`
	Status          LeadStatus `json:"status"`
	Owner           *string    `json:"owner,omitempty"`
	CreatedTime     time.Time  `json:"created_time"`
	ConversionValue *float64   `json:"conversion_value,omitempty"`
}

// Clone devolve uma cópia profunda do lead, sem compartilhar ponteiros
func (l *Lead) Clone() *Lead {
	if l == nil {
		return nil
	}

	c := *l
	if l.Referral != nil {
		ref := *l.Referral
		ref.ImageURL = cloneString(l.Referral.ImageURL)
		c.Referral = &ref
	}
	c.CTWAClid = cloneString(l.CTWAClid)
	c.CampaignID = cloneString(l.CampaignID)
	c.AdsetID = cloneString(l.AdsetID)
	c.AdID = cloneString(l.AdID)
	c.Owner = cloneString(l.Owner)
	if l.ConversionValue != nil {
		v := *l.ConversionValue
		c.ConversionValue = &v
	}

	return &c
}

// AssignOwner define o responsável pelo lead
func (l *Lead) AssignOwner(owner string) {
	l.Owner = &owner
}

// ApplyStatus muda o status e grava o valor de conversão apenas quando o lead é ganho
// e um valor positivo foi informado. Um valor já gravado não é apagado ao sair de "won".
func (l *Lead) ApplyStatus(status LeadStatus, conversionValue *float64) {
	l.Status = status
	if status == LeadStatusWon && conversionValue != nil && *conversionValue > 0 {
		v := *conversionValue
		l.ConversionValue = &v
	}
}

// RecognizedConversionValue retorna o valor de conversão somente para leads ganhos
func (l *Lead) RecognizedConversionValue() float64 {
	if l.Status != LeadStatusWon || l.ConversionValue == nil {
		return 0
	}
	return *l.ConversionValue
}

type AttributionSource string

const (
	AttributionReferral     AttributionSource = "referral"
	AttributionAdID         AttributionSource = "ad_id"
	AttributionUnattributed AttributionSource = "none"
)

// Attribution liga um lead ao anúncio que o originou
type Attribution struct {
	Source     AttributionSource `json:"source"`
	AdID       string            `json:"ad_id,omitempty"`
	AdsetID    string            `json:"adset_id,omitempty"`
	CampaignID string            `json:"campaign_id,omitempty"`
	CTWAClid   string            `json:"ctwa_clid,omitempty"`
}

// Attribution resolve a origem do lead: referral.source_id tem prioridade sobre ad_id
func (l *Lead) Attribution() Attribution {
	attr := Attribution{
		Source:     AttributionUnattributed,
		AdsetID:    deref(l.AdsetID),
		CampaignID: deref(l.CampaignID),
		CTWAClid:   deref(l.CTWAClid),
	}

	switch {
	case l.Referral != nil && l.Referral.SourceID != "":
		attr.Source = AttributionReferral
		attr.AdID = l.Referral.SourceID
	case l.AdID != nil && *l.AdID != "":
		attr.Source = AttributionAdID
		attr.AdID = *l.AdID
	}

	return attr
}

// LeadCounts são os contadores exibidos no topo da lista de leads
type LeadCounts struct {
	Total int `json:"total"`
	New   int `json:"new"`
	Open  int `json:"open"`
	Won   int `json:"won"`
}

func CountLeads(leads []*Lead) LeadCounts {
	counts := LeadCounts{Total: len(leads)}
	for _, lead := range leads {
		switch lead.Status {
		case LeadStatusNew:
			counts.New++
		case LeadStatusOpen:
			counts.Open++
		case LeadStatusWon:
			counts.Won++
		}
	}
	return counts
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
