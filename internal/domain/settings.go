package domain

// MaskedSecret substitui segredos na leitura das configurações
const MaskedSecret = "••••••••"

// IntegrationConfig guarda as credenciais Meta/WhatsApp e o webhook
type IntegrationConfig struct {
	AdAccountID     *string        `json:"adAccountId,omitempty"`
	MetaAccessToken *string        `json:"metaAccessToken,omitempty"`
	WhatsappToken   *string        `json:"whatsappToken,omitempty"`
	WebhookURL      *string        `json:"webhookUrl,omitempty"`
	WebhookSecret   *string        `json:"webhookSecret,omitempty"`
	Mappings        map[string]any `json:"mappings,omitempty"`
}

type CredentialValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type WebhookTest struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ValidateCredentialsRequest struct {
	AdAccountID string `json:"adAccountId"`
	Token       string `json:"token"`
}

type TestWebhookRequest struct {
	URL string `json:"url"`
}
