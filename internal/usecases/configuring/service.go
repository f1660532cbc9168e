package configuring

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/domain"
	"github.com/vfg2006/f-engage-api/pkg/utils"
)

const (
	accountPrefix     = "act_"
	tokenPrefix       = "EAA"
	minTokenLength    = 20
	webhookSchemeHTTP = "https://"

	errAccountPrefix = "Ad Account ID deve começar com 'act_'"
	errTokenInvalid  = "Token inválido ou expirado"
	errTokenScope    = "Token sem escopo suficiente. Necessário: ads_read, business_management"
	errWebhookHTTPS  = "URL deve usar HTTPS"
)

type Configurer interface {
	FetchConfig(ctx context.Context) (*domain.IntegrationConfig, error)
	SaveConfig(ctx context.Context, patch domain.IntegrationConfig) error
	ValidateCredentials(ctx context.Context, adAccountID, token string) (*domain.CredentialValidation, error)
	TestWebhook(ctx context.Context, url string) (*domain.WebhookTest, error)
}

type Latency struct {
	Fetch       time.Duration
	Save        time.Duration
	Credentials time.Duration
	Webhook     time.Duration
}

// Service guarda as configurações de integração em memória
type Service struct {
	mu      sync.RWMutex
	current domain.IntegrationConfig
	latency Latency
}

func NewService(cfg *config.Config) *Service {
	return NewServiceWithLatency(initialConfig(cfg.Integration), Latency{
		Fetch:       cfg.MockLatency.ConfigFetch,
		Save:        cfg.MockLatency.ConfigSave,
		Credentials: cfg.MockLatency.Credentials,
		Webhook:     cfg.MockLatency.WebhookTest,
	})
}

func NewServiceWithLatency(initial domain.IntegrationConfig, latency Latency) *Service {
	return &Service{
		current: cloneConfig(initial),
		latency: latency,
	}
}

func initialConfig(integration config.Integration) domain.IntegrationConfig {
	return domain.IntegrationConfig{
		AdAccountID:     optional(integration.AdAccountID),
		MetaAccessToken: optional(integration.MetaAccessToken),
		WhatsappToken:   optional(integration.WhatsappToken),
		WebhookURL:      optional(integration.WebhookURL),
		WebhookSecret:   optional(integration.WebhookSecret),
		Mappings:        map[string]any{},
	}
}

// FetchConfig devolve a configuração com tokens e segredo mascarados
func (s *Service) FetchConfig(ctx context.Context) (*domain.IntegrationConfig, error) {
	if err := utils.Delay(ctx, s.latency.Fetch); err != nil {
		return nil, err
	}

	s.mu.RLock()
	masked := cloneConfig(s.current)
	s.mu.RUnlock()

	masked.MetaAccessToken = mask(masked.MetaAccessToken)
	masked.WhatsappToken = mask(masked.WhatsappToken)
	masked.WebhookSecret = mask(masked.WebhookSecret)

	return &masked, nil
}

// SaveConfig mescla os campos informados. Valores iguais à máscara são ignorados
// para que o formulário possa reenviar o que recebeu de FetchConfig.
func (s *Service) SaveConfig(ctx context.Context, patch domain.IntegrationConfig) error {
	if err := utils.Delay(ctx, s.latency.Save); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merge(&s.current.AdAccountID, patch.AdAccountID)
	merge(&s.current.MetaAccessToken, patch.MetaAccessToken)
	merge(&s.current.WhatsappToken, patch.WhatsappToken)
	merge(&s.current.WebhookURL, patch.WebhookURL)
	merge(&s.current.WebhookSecret, patch.WebhookSecret)
	if patch.Mappings != nil {
		s.current.Mappings = maps.Clone(patch.Mappings)
	}

	logrus.WithField("ad_account_id", deref(s.current.AdAccountID)).Info("settings: configuração salva")
	return nil
}

// ValidateCredentials verifica o formato do Ad Account ID e do token. Credenciais rejeitadas
// retornam o resultado preenchido junto de um ValidationError.
func (s *Service) ValidateCredentials(ctx context.Context, adAccountID, token string) (*domain.CredentialValidation, error) {
	if err := utils.Delay(ctx, s.latency.Credentials); err != nil {
		return nil, err
	}

	var verr *domain.ValidationError
	switch {
	case !strings.HasPrefix(adAccountID, accountPrefix):
		verr = domain.NewValidationError("adAccountId", errAccountPrefix)
	case len(token) < minTokenLength:
		verr = domain.NewValidationError("token", errTokenInvalid)
	case !strings.HasPrefix(token, tokenPrefix):
		verr = domain.NewValidationError("token", errTokenScope)
	}

	if verr != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": adAccountID,
			"field":         verr.Field,
		}).Info("settings: credenciais rejeitadas")
		return &domain.CredentialValidation{Valid: false, Error: verr.Message}, verr
	}

	return &domain.CredentialValidation{Valid: true}, nil
}

// TestWebhook aceita apenas URLs HTTPS; nenhuma requisição é feita ao destino
func (s *Service) TestWebhook(ctx context.Context, url string) (*domain.WebhookTest, error) {
	if err := utils.Delay(ctx, s.latency.Webhook); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(url, webhookSchemeHTTP) {
		return &domain.WebhookTest{Success: false, Error: errWebhookHTTPS}, domain.NewValidationError("url", errWebhookHTTPS)
	}

	return &domain.WebhookTest{Success: true}, nil
}

func merge(target **string, value *string) {
	if value == nil || *value == domain.MaskedSecret {
		return
	}
	v := *value
	*target = &v
}

func mask(secret *string) *string {
	if secret == nil || *secret == "" {
		return nil
	}
	masked := domain.MaskedSecret
	return &masked
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneConfig(c domain.IntegrationConfig) domain.IntegrationConfig {
	clone := c
	clone.AdAccountID = cloneString(c.AdAccountID)
	clone.MetaAccessToken = cloneString(c.MetaAccessToken)
	clone.WhatsappToken = cloneString(c.WhatsappToken)
	clone.WebhookURL = cloneString(c.WebhookURL)
	clone.WebhookSecret = cloneString(c.WebhookSecret)
	clone.Mappings = maps.Clone(c.Mappings)
	return clone
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
