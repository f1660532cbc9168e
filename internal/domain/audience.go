package domain

import "time"

type SegmentShift struct {
	Segment string  `json:"segment"`
	Pct     float64 `json:"pct"`
}

type ShiftProposal struct {
	Increase []SegmentShift `json:"increase"`
	Decrease []SegmentShift `json:"decrease"`
}

// AudienceProposal é a sugestão de ajuste de público exibida no painel
type AudienceProposal struct {
	Msg         string         `json:"msg"`
	Proposal    ShiftProposal  `json:"proposal"`
	AvgCTR      float64        `json:"avg_ctr"`
	TopCTR      float64        `json:"top_ctr"`
	Improvement float64        `json:"improvement"`
	TopSegments []BreakdownRow `json:"top_segments"`
}

// FixedShiftProposal é a proposta sempre devolvida, independente da melhoria calculada
func FixedShiftProposal() ShiftProposal {
	return ShiftProposal{
		Increase: []SegmentShift{
			{Segment: "35-44 anos", Pct: 20},
			{Segment: "45-54 anos", Pct: 20},
		},
		Decrease: []SegmentShift{
			{Segment: "18-24 anos", Pct: -10},
		},
	}
}

// AudienceShiftApplication registra uma aplicação da proposta (apenas carimbo de tempo)
type AudienceShiftApplication struct {
	ID          string        `json:"id"`
	Proposal    ShiftProposal `json:"proposal"`
	LastUpdated time.Time     `json:"last_updated"`
}
