package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/product"
)

// ProductRequest representa os dados de um produto para criação ou atualização
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	BuyPrice    float64 `json:"buy_price" binding:"min=0"`
	SellPrice   float64 `json:"sell_price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	MinQuantity int     `json:"min_quantity" binding:"min=0"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	BuyPrice    float64   `json:"buy_price"`
	SellPrice   float64   `json:"sell_price"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	LowStock    bool      `json:"low_stock"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		BuyPrice:    p.BuyPrice,
		SellPrice:   p.SellPrice,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		LowStock:    p.IsLowStock(),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTOs
func ToProductListResponse(products []*product.Product) []ProductResponse {
	data := make([]ProductResponse, len(products))
	for i, p := range products {
		data[i] = ToProductResponse(p)
	}
	return data
}
