package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/configuring"
	"github.com/vfg2006/f-engage-api/pkg/apiErrors"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

func GetSettings(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		current, err := service.FetchConfig(r.Context())
		if err != nil {
			logger.WithError(err).Error("settings: fetch failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, current)
	})
}

func SaveSettings(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var patch domain.IntegrationConfig
		if !decodeBody(w, r, &patch) {
			return
		}

		if err := service.SaveConfig(r.Context(), patch); err != nil {
			logger.WithError(err).Error("settings: save failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		current, err := service.FetchConfig(r.Context())
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, current)
	})
}

// ValidateCredentials responde 200 com {valid, error}; credenciais rejeitadas não são erro HTTP
func ValidateCredentials(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.ValidateCredentialsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.ValidateCredentials(r.Context(), req.AdAccountID, req.Token)
		if err != nil && !errors.Is(err, domain.ErrValidation) {
			logger.WithError(err).Error("settings: credential validation failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

func TestWebhook(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.TestWebhookRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.TestWebhook(r.Context(), req.URL)
		if err != nil && !errors.Is(err, domain.ErrValidation) {
			logger.WithError(err).Error("settings: webhook test failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}
