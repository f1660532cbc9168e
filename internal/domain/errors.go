package domain

import (
	"errors"
	"fmt"
)

// Taxonomia plana de erros: validação de entrada e falha ao buscar dados
var (
	ErrValidation   = errors.New("erro de validação")
	ErrFetch        = errors.New("erro ao buscar dados")
	ErrLeadNotFound = errors.New("lead não encontrado")
)

// ValidationError descreve uma entrada malformada (credencial, webhook, filtro, status)
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap permite errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FetchError é usado igualmente para leads e insights quando o provedor falha
type FetchError struct {
	Resource string
	Message  string
	Err      error
}

func NewFetchError(resource, message string, err error) *FetchError {
	return &FetchError{Resource: resource, Message: message, Err: err}
}

// Error implementa a interface error
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Is faz com que errors.Is(err, ErrFetch) seja verdadeiro para qualquer FetchError
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// Unwrap retorna o erro subjacente
func (e *FetchError) Unwrap() error {
	return e.Err
}
