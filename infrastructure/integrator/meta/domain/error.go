package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é o código de token inválido; 460, 463 e 467 são subcódigos de expiração
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// APIError é o erro devolvido pelo cliente quando a Marketing API responde com status diferente de 200
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message == "" {
		return fmt.Sprintf("meta api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("meta api: status %d: %s (code %d)", e.StatusCode, e.Details.Message, e.Details.Code)
}

func (e *APIError) TokenExpired() bool {
	resp := ErrorResponse{Error: e.Details}
	return resp.IsTokenExpired()
}
