package handler

import (
	"net/http"

	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/authenticating"
	"github.com/vfg2006/f-engage-api/pkg/apiErrors"
	"github.com/vfg2006/f-engage-api/pkg/log"
	"github.com/vfg2006/f-engage-api/pkg/middleware"
)

// Login autentica sempre o administrador do protótipo e devolve o token
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Login(req.Email, req.Password)
		if err != nil {
			logger.WithError(err).Error("auth: login failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}

// GetMe retorna o usuário do token Bearer ou o administrador padrão
func GetMe(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		user, err := service.Me(middleware.BearerToken(r))
		if err != nil {
			logger.WithError(err).Warn("auth: invalid token on /me")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, user)
	})
}
