package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MakeRequest executa um GET autenticado com bearer token e devolve o corpo da resposta
func MakeRequest(ctx context.Context, client *http.Client, url, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return data, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return data, nil
}

// StatusError indica resposta HTTP diferente de 200
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error on Request: %s status: %s", e.URL, e.Status)
}
