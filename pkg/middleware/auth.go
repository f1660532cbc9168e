package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/internal/usecases/authenticating"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// SessionMiddleware coloca no contexto o usuário da sessão. Sem token, ou com token
// inválido, a requisição segue como o administrador padrão do protótipo.
func SessionMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := authenticating.DefaultUser()

			if tokenString := BearerToken(r); tokenString != "" {
				claims, err := authService.ValidateToken(tokenString)
				if err != nil {
					log.ForContext(r.Context()).WithError(err).Warn("auth: token ignorado, usando sessão padrão")
				} else {
					user = claims.User()
				}
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return strings.TrimSpace(tokenString)
}

// UserFromContext devolve o usuário da sessão, se houver
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(*domain.User)
	return user, ok
}
