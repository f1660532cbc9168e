package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/f-engage-api/internal/scheduler"
	"github.com/vfg2006/f-engage-api/pkg/apiErrors"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeInsights = scheduler.StoreInsights
	CronJobTypeLeads    = scheduler.StoreLeads
	CronJobTypeAll      = "all"
)

// CronJob é o que o handler precisa de um agendador de store
type CronJob interface {
	Name() string
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	InsightsRefresh CronJob
	LeadsRefresh    CronJob
}

func (s CronJobServices) jobs() []CronJob {
	jobs := make([]CronJob, 0, 2)
	for _, job := range []CronJob{s.InsightsRefresh, s.LeadsRefresh} {
		if job != nil {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		var selected []CronJob
		switch cronType {
		case CronJobTypeInsights:
			selected = []CronJob{services.InsightsRefresh}
		case CronJobTypeLeads:
			selected = []CronJob{services.LeadsRefresh}
		case CronJobTypeAll:
			selected = services.jobs()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: insights, leads, all", nil)
			return
		}

		started := make(map[string]bool, len(selected))
		for _, job := range selected {
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização não disponível", map[string]string{"type": cronType})
				return
			}
			started[job.Name()] = job.TriggerManualSync()
		}

		logger.WithField("type", cronType).Info("cron: manual run requested")

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for _, job := range services.jobs() {
			status[job.Name()] = job.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	})
}
