package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	t.Run("cria anotação com vínculo opcional a encomenda", func(t *testing.T) {
		n, err := NewNote("user-1", "order-1", "Acompanhamento", "Entregar até sexta-feira")
		require.NoError(t, err)

		assert.Equal(t, "order-1", n.OrderID)
		assert.NotEmpty(t, n.ID)
	})

	t.Run("cria anotação sem encomenda", func(t *testing.T) {
		n, err := NewNote("user-1", "", "Reunião", "Agendar reunião com fornecedor")
		require.NoError(t, err)

		assert.Empty(t, n.OrderID)
	})

	t.Run("rejeita título vazio", func(t *testing.T) {
		_, err := NewNote("user-1", "", "", "conteúdo")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejeita conteúdo vazio", func(t *testing.T) {
		_, err := NewNote("user-1", "", "título", "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestIsOwnedBy(t *testing.T) {
	n, err := NewNote("user-1", "", "título", "conteúdo")
	require.NoError(t, err)

	assert.True(t, n.IsOwnedBy("user-1"))
	assert.False(t, n.IsOwnedBy("user-2"))
}
