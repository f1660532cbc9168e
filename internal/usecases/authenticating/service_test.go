package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
)

func newTestService() *Service {
	return NewService(&config.Config{
		Auth: config.Auth{Secret: "test_secret", TokenTTL: time.Hour},
	})
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		expectedEmail string
	}{
		{
			name:          "Sem e-mail - deve usar o administrador padrão",
			email:         "",
			expectedEmail: DefaultUserEmail,
		},
		{
			name:          "Com e-mail - deve normalizar e manter o perfil admin",
			email:         "  Maria@Brasilcard.com ",
			expectedEmail: "maria@brasilcard.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()

			resp, err := service.Login(tt.email, "qualquer-senha")
			require.NoError(t, err)

			assert.True(t, resp.IsAuthenticated)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, DefaultUserName, resp.User.Name)
			assert.Equal(t, tt.expectedEmail, resp.User.Email)
			assert.Equal(t, domain.UserRoleAdmin, resp.User.Role)

			claims, err := service.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedEmail, claims.UserEmail)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService()
	resp, err := service.Login("admin@brasilcard.com", "")
	require.NoError(t, err)

	t.Run("Token de outro segredo", func(t *testing.T) {
		other := NewService(&config.Config{Auth: config.Auth{Secret: "outro"}})
		_, err := other.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token expirado", func(t *testing.T) {
		expired := newTestService()
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_Me(t *testing.T) {
	service := newTestService()

	user, err := service.Me("")
	require.NoError(t, err)
	assert.Equal(t, DefaultUser(), user)

	resp, err := service.Login("gestor@brasilcard.com", "")
	require.NoError(t, err)

	user, err = service.Me(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "gestor@brasilcard.com", user.Email)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)

	_, err = service.Me("invalido")
	assert.Error(t, err)
}
