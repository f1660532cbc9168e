package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/authenticating"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func contextWithUser(r *http.Request, user *domain.User) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, user)
}

func TestSessionMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo", TokenTTL: time.Hour}})
	login, err := auth.Login("gestor@brasilcard.com", "")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		expectedEmail string
	}{
		{
			name:          "Sem token - administrador padrão",
			expectedEmail: authenticating.DefaultUserEmail,
		},
		{
			name:          "Token válido - usuário do token",
			authorization: "Bearer " + login.Token,
			expectedEmail: "gestor@brasilcard.com",
		},
		{
			name:          "Token inválido - sessão padrão",
			authorization: "Bearer invalido",
			expectedEmail: authenticating.DefaultUserEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user *domain.User
			handler := SessionMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, _ = UserFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			require.NotNil(t, user)
			assert.Equal(t, tt.expectedEmail, user.Email)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		user           *domain.User
		expectedStatus int
	}{
		{
			name:           "Admin - permitido",
			user:           authenticating.DefaultUser(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Agente - negado",
			user:           &domain.User{Email: "agente@brasilcard.com", Role: domain.UserRoleAgent},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Sem sessão - não autenticado",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil)
			if tt.user != nil {
				req = req.WithContext(contextWithUser(req, tt.user))
			}

			rec := httptest.NewRecorder()
			AdminOnly()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/leads", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/leads", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/leads", nil)
		rec := httptest.NewRecorder()
		Cors([]string{"*"})(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
