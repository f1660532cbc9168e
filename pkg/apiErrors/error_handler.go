package apiErrors

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/f-engage-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de sessão
	ErrInvalidToken          = "AUTH_001" // Token inválido ou expirado
	ErrInsufficientPrivilege = "AUTH_002" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidField        = "VAL_004" // Campo rejeitado pela regra de negócio

	// Erros de busca nos provedores
	ErrFetchFailed = "FETCH_001" // Provedor de insights ou leads falhou
	ErrNotFound    = "FETCH_002" // Recurso não encontrado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrTimeout           = "SRV_004" // Tempo de resposta esgotado
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidField:          http.StatusUnprocessableEntity,
	ErrFetchFailed:           http.StatusBadGateway,
	ErrNotFound:              http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrTimeout:               http.StatusGatewayTimeout,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// Status devolve o status HTTP associado ao código
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError converte os erros de domínio no APIError correspondente
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var validationErr *domain.ValidationError
	var fetchErr *domain.FetchError

	switch {
	case errors.As(err, &validationErr):
		return APIError{
			Code:    ErrInvalidField,
			Message: validationErr.Message,
			Details: map[string]string{"field": validationErr.Field},
		}
	case errors.Is(err, context.DeadlineExceeded):
		return APIError{Code: ErrTimeout, Message: "Tempo de resposta esgotado"}
	case errors.Is(err, domain.ErrLeadNotFound):
		return APIError{Code: ErrNotFound, Message: err.Error()}
	case errors.As(err, &fetchErr):
		return APIError{
			Code:    ErrFetchFailed,
			Message: fetchErr.Message,
			Details: map[string]string{"resource": fetchErr.Resource},
		}
	default:
		return APIError{Code: ErrInternalServer, Message: "Erro interno do servidor"}
	}
}

// WriteDomainError escreve a resposta para um erro vindo dos casos de uso
func WriteDomainError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
