package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/f-engage-api/internal/usecases/reporting"
	"github.com/vfg2006/f-engage-api/pkg/apiErrors"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

func GetReportSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.Summary())
	})
}

// ExportReportCSV gera o CSV em memória para só então escrever os cabeçalhos
func ExportReportCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var buf bytes.Buffer
		if err := service.ExportCSV(&buf); err != nil {
			logger.WithError(err).Error("reports: csv export failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório", nil)
			return
		}

		filename := fmt.Sprintf("relatorio-%s.csv", time.Now().Format(time.DateOnly))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("reports: failed to write csv")
		}
	})
}
