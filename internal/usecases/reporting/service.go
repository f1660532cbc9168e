package reporting

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading"
)

type Reporter interface {
	Summary() *domain.ReportSummary
	ExportCSV(w io.Writer) error
}

// Service monta o relatório a partir do estado atual dos dois stores, sem buscar dados novos
type Service struct {
	insights insighting.Insighter
	leads    leading.Leader
	now      func() time.Time
}

func NewService(insights insighting.Insighter, leads leading.Leader) *Service {
	return &Service{
		insights: insights,
		leads:    leads,
		now:      time.Now,
	}
}

func (s *Service) Summary() *domain.ReportSummary {
	snapshot := s.insights.Snapshot()
	return domain.BuildReportSummary(snapshot.KPIs, s.leads.Leads())
}

// ExportCSV escreve o resumo (métrica, valor) seguido da tabela de conjuntos de anúncios
func (s *Service) ExportCSV(w io.Writer) error {
	snapshot := s.insights.Snapshot()
	summary := domain.BuildReportSummary(snapshot.KPIs, s.leads.Leads())

	writer := csv.NewWriter(w)
	records := [][]string{
		{"metrica", "valor"},
		{"gerado_em", s.now().Format(time.RFC3339)},
		{"periodo_inicio", snapshot.Filters.Since.Format(time.DateOnly)},
		{"periodo_fim", snapshot.Filters.Until.Format(time.DateOnly)},
		{"impressoes", strconv.Itoa(summary.KPIs.Impressions)},
		{"alcance", strconv.Itoa(summary.KPIs.Reach)},
		{"cliques", strconv.Itoa(summary.KPIs.Clicks)},
		{"ctr", formatFloat(summary.KPIs.CTR)},
		{"cpc", formatFloat(summary.KPIs.CPC)},
		{"investimento", formatFloat(summary.KPIs.Spend)},
		{"leads", strconv.Itoa(summary.Leads.Total)},
		{"leads_ganhos", strconv.Itoa(summary.Leads.Won)},
		{"taxa_conversa", formatFloat(summary.ConversationRate)},
		{"taxa_conversao", formatFloat(summary.ConversionRate)},
		{"valor_total", formatFloat(summary.TotalConversion)},
		{"valor_medio", formatFloat(summary.AvgConversionValue)},
		{"custo_por_conversa", formatFloat(summary.CostPerConversation)},
		{"roi_estimado", formatFloat(summary.EstimatedROI)},
		{},
		{"adset_id", "conversas", "ganhos", "taxa"},
	}

	for _, adset := range summary.TopAdsets {
		records = append(records, []string{
			adset.AdsetID,
			strconv.Itoa(adset.Conversations),
			strconv.Itoa(adset.Won),
			formatFloat(adset.Rate),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		logrus.WithError(err).Error("reports: falha ao exportar CSV")
		return errors.Wrap(err, "write report csv")
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
