package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("cria encomenda pendente somando o total dos itens", func(t *testing.T) {
		a, err := NewItem("prod-1", 10, 22.0)
		require.NoError(t, err)
		b, err := NewItem("prod-2", 5, 12.0)
		require.NoError(t, err)

		o := NewOrder("user-1", []Item{*a, *b}, nil, "urgente", "João", "11999990000", "bolo decorado")

		assert.Equal(t, StatusPendente, o.Status)
		assert.Equal(t, 280.0, o.Total)
		assert.Equal(t, "João", o.ClientName)
		for _, item := range o.Items {
			assert.Equal(t, o.ID, item.OrderID)
		}
	})

	t.Run("permite encomenda sem itens", func(t *testing.T) {
		o := NewOrder("user-1", nil, nil, "", "Maria", "", "encomenda por descrição")

		assert.Equal(t, StatusPendente, o.Status)
		assert.Equal(t, 0.0, o.Total)
		assert.Empty(t, o.Items)
	})

	t.Run("vincula imagens à encomenda", func(t *testing.T) {
		img, err := NewImage("https://cdn.example.com/a.jpg")
		require.NoError(t, err)

		o := NewOrder("user-1", nil, []Image{*img}, "", "", "", "")

		require.Len(t, o.Images, 1)
		assert.Equal(t, o.ID, o.Images[0].OrderID)
	})
}

func TestNewImage(t *testing.T) {
	_, err := NewImage("")
	assert.ErrorIs(t, err, ErrEmptyImageURL)
}

func TestCompletionTriggersStock(t *testing.T) {
	tests := []struct {
		name      string
		current   Status
		newStatus Status
		want      bool
	}{
		{"pendente para concluida baixa estoque", StatusPendente, StatusConcluida, true},
		{"em andamento para concluida baixa estoque", StatusEmAndamento, StatusConcluida, true},
		{"completa para concluida baixa estoque", StatusCompleta, StatusConcluida, true},
		{"concluida para concluida não baixa de novo", StatusConcluida, StatusConcluida, false},
		{"pendente para cancelada não baixa", StatusPendente, StatusCancelada, false},
		{"concluida para cancelada não devolve", StatusConcluida, StatusCancelada, false},
		{"pendente para em andamento não baixa", StatusPendente, StatusEmAndamento, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder("user-1", nil, nil, "", "", "", "")
			o.Status = tt.current

			assert.Equal(t, tt.want, o.CompletionTriggersStock(tt.newStatus))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	t.Run("aplica status válido", func(t *testing.T) {
		o := NewOrder("user-1", nil, nil, "", "", "", "")

		err := o.TransitionTo(StatusEmAndamento)
		require.NoError(t, err)
		assert.Equal(t, StatusEmAndamento, o.Status)
	})

	t.Run("rejeita status desconhecido", func(t *testing.T) {
		o := NewOrder("user-1", nil, nil, "", "", "", "")

		err := o.TransitionTo(Status("ENTREGUE"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, StatusPendente, o.Status)
	})
}
