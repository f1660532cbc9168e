package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
)

const (
	DefaultUserName  = "Admin User"
	DefaultUserEmail = "admin@brasilcard.com"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
)

type Authenticator interface {
	Login(email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	Me(tokenString string) (*domain.User, error)
}

// Service implementa a sessão do protótipo: qualquer login autentica o administrador
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) *Service {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		secret: []byte(cfg.Auth.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// DefaultUser é o usuário autenticado quando nenhum token é enviado
func DefaultUser() *domain.User {
	return &domain.User{
		Name:  DefaultUserName,
		Email: DefaultUserEmail,
		Role:  domain.UserRoleAdmin,
	}
}

// Login não confere a senha; o e-mail informado substitui o padrão
func (s *Service) Login(email, password string) (*domain.LoginResponse, error) {
	user := DefaultUser()
	if email = strings.TrimSpace(email); email != "" {
		user.Email = strings.ToLower(email)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		logrus.WithError(err).Error("auth: falha ao gerar token")
		return nil, err
	}

	logrus.WithField("user_email", user.Email).Info("auth: login realizado")

	return &domain.LoginResponse{
		Token:           token,
		IsAuthenticated: true,
		User:            user,
	}, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Me devolve o usuário do token ou o administrador padrão quando não há token
func (s *Service) Me(tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return DefaultUser(), nil
	}

	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return claims.User(), nil
}
