package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("calcula total e lucro a partir do preço de custo congelado", func(t *testing.T) {
		item, err := NewItem("prod-1", 20, 15.0, 10.0)
		require.NoError(t, err)

		assert.Equal(t, 300.0, item.Total)
		assert.Equal(t, 100.0, item.Profit)
		assert.Equal(t, 10.0, item.BuyPrice)
	})

	t.Run("rejeita quantidade zero", func(t *testing.T) {
		_, err := NewItem("prod-1", 0, 10.0, 5.0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rejeita quantidade negativa", func(t *testing.T) {
		_, err := NewItem("prod-1", -3, 10.0, 5.0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		_, err := NewItem("prod-1", 1, -1.0, 5.0)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("permite lucro negativo quando vendido abaixo do custo", func(t *testing.T) {
		item, err := NewItem("prod-1", 2, 4.0, 5.0)
		require.NoError(t, err)

		assert.Equal(t, 8.0, item.Total)
		assert.Equal(t, -2.0, item.Profit)
	})
}

func TestNewSale(t *testing.T) {
	t.Run("soma total e lucro de todos os itens", func(t *testing.T) {
		a, err := NewItem("prod-1", 2, 22.0, 15.0)
		require.NoError(t, err)
		b, err := NewItem("prod-2", 3, 12.0, 8.0)
		require.NoError(t, err)

		s, err := NewSale("user-1", []Item{*a, *b}, "venda da manhã")
		require.NoError(t, err)

		assert.Equal(t, 80.0, s.Total)
		assert.Equal(t, 26.0, s.Profit)
		assert.Equal(t, "user-1", s.UserID)
		assert.NotEmpty(t, s.ID)
	})

	t.Run("vincula os itens à venda", func(t *testing.T) {
		a, err := NewItem("prod-1", 1, 10.0, 6.0)
		require.NoError(t, err)

		s, err := NewSale("user-1", []Item{*a}, "")
		require.NoError(t, err)

		for _, item := range s.Items {
			assert.Equal(t, s.ID, item.SaleID)
		}
	})

	t.Run("rejeita venda sem itens", func(t *testing.T) {
		_, err := NewSale("user-1", nil, "")
		assert.ErrorIs(t, err, ErrNoItems)
	})
}
