package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading"
	"github.com/vfg2006/f-engage-api/pkg/apiErrors"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

// ListLeads busca os leads no provedor e devolve a lista com os contadores
func ListLeads(service leading.Leader, presenter LeadPresenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := domain.ParseLeadStatus(r.URL.Query().Get("status"))
		if err != nil {
			logger.WithError(err).Warn("leads: invalid status filter")
			apiErrors.WriteDomainError(w, err)
			return
		}

		if err := service.FetchAll(r.Context(), status); err != nil {
			logger.WithError(err).Error("leads: fetch failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		leads := service.Filtered(status)
		logger.WithField("count", len(leads)).Info("leads: listed")

		writeJSON(w, logger, http.StatusOK, LeadsResponse{
			Leads:  presenter.PresentAll(leads),
			Counts: service.Counts(),
		})
	})
}

func GetLeadCounts(service leading.Leader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.Counts())
	})
}

func GetLead(service leading.Leader, presenter LeadPresenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		lead, err := service.FetchOne(r.Context(), id)
		if err != nil {
			logger.WithError(err).WithField("lead_id", id).Error("leads: fetch one failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		if lead == nil {
			apiErrors.WriteDomainError(w, fmt.Errorf("%w: %s", domain.ErrLeadNotFound, id))
			return
		}

		writeJSON(w, logger, http.StatusOK, presenter.Present(lead))
	})
}

func AssignLead(service leading.Leader, presenter LeadPresenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req AssignLeadRequest
		if !decodeBody(w, r, &req) {
			return
		}

		owner := strings.TrimSpace(req.Owner)
		if owner == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Responsável não informado", nil)
			return
		}

		if err := service.Assign(r.Context(), id, owner); err != nil {
			logger.WithError(err).WithField("lead_id", id).Error("leads: assign failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"lead_id": id,
			"owner":   owner,
		}).Info("leads: owner assigned")

		writeLeadFromStore(w, logger, service, presenter, id)
	})
}

func SetLeadStatus(service leading.Leader, presenter LeadPresenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetLeadStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Status == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Status não informado", nil)
			return
		}

		if err := service.SetStatus(r.Context(), id, req.Status, req.ConversionValue); err != nil {
			logger.WithError(err).WithField("lead_id", id).Warn("leads: status update failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"lead_id": id,
			"status":  req.Status,
		}).Info("leads: status updated")

		writeLeadFromStore(w, logger, service, presenter, id)
	})
}

// writeLeadFromStore responde com o lead já atualizado no store, ou 204 se ele não estiver carregado
func writeLeadFromStore(w http.ResponseWriter, logger log.Logger, service leading.Leader, presenter LeadPresenter, id string) {
	for _, lead := range service.Leads() {
		if lead.ID == id {
			writeJSON(w, logger, http.StatusOK, presenter.Present(lead))
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
