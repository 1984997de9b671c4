package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("cria produto ativo", func(t *testing.T) {
		p, err := NewProduct("Arroz 5kg", "Alimentos", 15.0, 22.0, 100, 20)
		require.NoError(t, err)

		assert.True(t, p.Active)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, 100, p.Quantity)
	})

	t.Run("rejeita nome vazio", func(t *testing.T) {
		_, err := NewProduct("", "Alimentos", 1.0, 2.0, 0, 0)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejeita categoria vazia", func(t *testing.T) {
		_, err := NewProduct("Arroz", "", 1.0, 2.0, 0, 0)
		assert.ErrorIs(t, err, ErrEmptyCategory)
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		_, err := NewProduct("Arroz", "Alimentos", -1.0, 2.0, 0, 0)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("rejeita quantidade negativa", func(t *testing.T) {
		_, err := NewProduct("Arroz", "Alimentos", 1.0, 2.0, -1, 0)
		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}

func TestProductUpdate(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "Alimentos", 15.0, 22.0, 100, 20)
	require.NoError(t, err)

	err = p.Update("Arroz Integral 5kg", "Alimentos", 16.0, 24.0, 90, 20)
	require.NoError(t, err)

	assert.Equal(t, "Arroz Integral 5kg", p.Name)
	assert.Equal(t, 24.0, p.SellPrice)

	err = p.Update("", "Alimentos", 1.0, 2.0, 0, 0)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestDeactivate(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "Alimentos", 15.0, 22.0, 100, 20)
	require.NoError(t, err)

	p.Deactivate()
	assert.False(t, p.Active)
}

func TestHasStock(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "Alimentos", 15.0, 22.0, 10, 2)
	require.NoError(t, err)

	assert.True(t, p.HasStock(10))
	assert.False(t, p.HasStock(11))
}

func TestIsLowStock(t *testing.T) {
	p, err := NewProduct("Detergente 500ml", "Limpeza", 2.0, 3.5, 3, 10)
	require.NoError(t, err)
	assert.True(t, p.IsLowStock())

	p.Quantity = 11
	assert.False(t, p.IsLowStock())
}
