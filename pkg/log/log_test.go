package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Sem ID recebido - deve gerar um UUID", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Com ID recebido - deve manter o valor", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "req-123")

		assert.Equal(t, "req-123", id)
		assert.Equal(t, "req-123", GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Equal(t, "", GetCorrelationID(context.Background()))
		assert.Equal(t, L, ForContext(context.Background()))
	})
}
