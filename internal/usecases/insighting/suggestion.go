package insighting

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

const topSegmentsLimit = 2

// SuggestAudienceShift calcula a sugestão de público a partir do breakdown atual
func (s *Store) SuggestAudienceShift() *domain.AudienceProposal {
	s.mu.RLock()
	rows := make([]domain.BreakdownRow, len(s.breakdownRows))
	copy(rows, s.breakdownRows)
	s.mu.RUnlock()

	return SuggestAudienceShift(rows)
}

// SuggestAudienceShift compara o CTR médio de todas as linhas com a melhor linha das faixas 35-44 e 45-54.
// Apenas a mensagem usa a melhoria calculada: a proposta estruturada é sempre a mesma.
func SuggestAudienceShift(rows []domain.BreakdownRow) *domain.AudienceProposal {
	avgCtr := 0.0
	if len(rows) > 0 {
		sum := 0.0
		for _, row := range rows {
			sum += row.CTR
		}
		avgCtr = sum / float64(len(rows))
	}

	topSegments := make([]domain.BreakdownRow, 0, topSegmentsLimit)
	for _, row := range rows {
		if domain.IsFavoredAge(row.Age) {
			topSegments = append(topSegments, row)
		}
	}
	sort.SliceStable(topSegments, func(i, j int) bool {
		return topSegments[i].CTR > topSegments[j].CTR
	})
	if len(topSegments) > topSegmentsLimit {
		topSegments = topSegments[:topSegmentsLimit]
	}

	topCtr := 0.0
	if len(topSegments) > 0 {
		topCtr = topSegments[0].CTR
	}

	improvement := 0.0
	if avgCtr > 0 {
		improvement = domain.SafeFinite((topCtr - avgCtr) / avgCtr * 100)
	}

	return &domain.AudienceProposal{
		Msg:         fmt.Sprintf("⚡ Detecção: Público 35-55 com +%.0f%% CTR vs. média. Ajustar segmentação?", improvement),
		Proposal:    domain.FixedShiftProposal(),
		AvgCTR:      utils.RoundWithTwoDecimalPlace(avgCtr),
		TopCTR:      topCtr,
		Improvement: utils.RoundWithTwoDecimalPlace(improvement),
		TopSegments: topSegments,
	}
}

// ApplyAudienceShift não altera a segmentação real: apenas atualiza o carimbo lastUpdated
func (s *Store) ApplyAudienceShift() (*domain.AudienceShiftApplication, error) {
	id, err := utils.GeneratePrefixedID("shift")
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.now()
	s.lastUpdated = &now
	s.mu.Unlock()

	s.metrics.ObserveAudienceShift()
	logrus.WithField("application_id", id).Info("insights: proposta de segmentação aplicada")

	return &domain.AudienceShiftApplication{
		ID:          id,
		Proposal:    domain.FixedShiftProposal(),
		LastUpdated: now,
	}, nil
}
