package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockItem(t *testing.T) {
	t.Run("cria linha de estoque com total calculado", func(t *testing.T) {
		item, err := NewStockItem("prod-1", 20, 15.0)
		require.NoError(t, err)

		assert.Equal(t, ItemTypeStock, item.ItemType)
		assert.Equal(t, 300.0, item.Total)
		assert.Equal(t, "prod-1", item.ProductID)
	})

	t.Run("rejeita quantidade inválida", func(t *testing.T) {
		_, err := NewStockItem("prod-1", 0, 10.0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rejeita preço inválido", func(t *testing.T) {
		_, err := NewStockItem("prod-1", 1, 0)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestNewFreeItem(t *testing.T) {
	t.Run("cria linha avulsa sem produto", func(t *testing.T) {
		item, err := NewFreeItem("Frete da entrega", 1, 50.0)
		require.NoError(t, err)

		assert.Equal(t, ItemTypeFree, item.ItemType)
		assert.Empty(t, item.ProductID)
		assert.Equal(t, 50.0, item.Total)
	})

	t.Run("rejeita descrição vazia", func(t *testing.T) {
		_, err := NewFreeItem("", 1, 10.0)
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})
}

func TestNewPurchase(t *testing.T) {
	t.Run("soma o total de linhas de estoque e avulsas", func(t *testing.T) {
		stock, err := NewStockItem("prod-1", 20, 15.0)
		require.NoError(t, err)
		free, err := NewFreeItem("Sacolas", 100, 0.5)
		require.NoError(t, err)

		p, err := NewPurchase("user-1", []Item{*stock, *free}, "compra semanal")
		require.NoError(t, err)

		assert.Equal(t, 350.0, p.Total)
		for _, item := range p.Items {
			assert.Equal(t, p.ID, item.PurchaseID)
		}
	})

	t.Run("rejeita compra sem itens", func(t *testing.T) {
		_, err := NewPurchase("user-1", nil, "")
		assert.ErrorIs(t, err, ErrNoItems)
	})
}
