package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpro/stockpro-api/internal/domain/sale"
)

func TestToSaleItemInputs(t *testing.T) {
	inputs := ToSaleItemInputs([]SaleItemRequest{
		{ProductID: "prod-1", Quantity: 2, UnitPrice: 22.0},
		{ProductID: "prod-2", Quantity: 3, UnitPrice: 12.0},
	})

	require.Len(t, inputs, 2)
	assert.Equal(t, "prod-1", inputs[0].ProductID)
	assert.Equal(t, 3, inputs[1].Quantity)
	assert.Equal(t, 12.0, inputs[1].UnitPrice)
}

func TestToSaleResponse(t *testing.T) {
	item, err := sale.NewItem("prod-1", 20, 15.0, 10.0)
	require.NoError(t, err)

	s, err := sale.NewSale("user-1", []sale.Item{*item}, "venda da manhã")
	require.NoError(t, err)
	s.UserName = "João Funcionário"

	resp := ToSaleResponse(s)

	assert.Equal(t, s.ID, resp.ID)
	assert.Equal(t, "João Funcionário", resp.UserName)
	assert.Equal(t, 300.0, resp.Total)
	assert.Equal(t, 100.0, resp.Profit)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 10.0, resp.Items[0].BuyPrice)
}
