package handler

import (
	"net/http"

	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/pkg/apiErrors"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, http.StatusOK, NewInsightsResponse(service.Snapshot()))
	})
}

// FetchInsights refaz a busca com os filtros atuais e devolve o novo estado
func FetchInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		filters := service.Filters()

		logger.WithFields(log.Fields{
			"account_id": filters.AccountID,
			"level":      filters.Level,
		}).Info("insights: fetching with current filters")

		if err := service.FetchInsights(r.Context()); err != nil {
			logger.WithError(err).Error("insights: fetch failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, NewInsightsResponse(service.Snapshot()))
	})
}

// UpdateInsightFilters mescla os filtros sem disparar nova busca
func UpdateInsightFilters(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req FiltersPatchRequest
		if !decodeBody(w, r, &req) {
			return
		}

		patch, err := req.ToPatch()
		if err != nil {
			logger.WithError(err).Warn("insights: invalid filter dates")
			apiErrors.WriteDomainError(w, err)
			return
		}

		filters, err := service.SetFilters(patch)
		if err != nil {
			logger.WithError(err).Warn("insights: filters rejected")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, NewFiltersDTO(filters))
	})
}

func GetInsightsBreakdown(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		audience := r.URL.Query().Get("audience")
		if audience == "" {
			audience = domain.AudienceAll
		}
		if audience != domain.AudienceAll && audience != domain.Audience35To55 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Público inválido. Valores aceitos: all, 35-55", nil)
			return
		}

		rows := service.Breakdown(audience)
		logger.WithFields(log.Fields{
			"audience": audience,
			"rows":     len(rows),
		}).Debug("insights: breakdown requested")

		writeJSON(w, logger, http.StatusOK, rows)
	})
}

func GetAgeRollup(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.AgeRollup())
	})
}

func GetAudienceSuggestion(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.SuggestAudienceShift())
	})
}

func ApplyAudienceSuggestion(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		application, err := service.ApplyAudienceShift()
		if err != nil {
			logger.WithError(err).Error("insights: failed to apply audience shift")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao aplicar ajuste de público", nil)
			return
		}

		logger.WithField("shift_id", application.ID).Info("insights: audience shift applied")
		writeJSON(w, logger, http.StatusOK, application)
	})
}
