package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/sale"
)

// SaleItemRequest representa uma linha de venda recebida na requisição
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// SaleRequest representa os dados para registrar uma venda
type SaleRequest struct {
	Items []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes string            `json:"notes"`
}

// SaleItemResponse representa uma linha de venda na resposta
type SaleItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	BuyPrice    float64 `json:"buy_price"`
	Total       float64 `json:"total"`
	Profit      float64 `json:"profit"`
}

// SaleResponse representa a resposta com dados de uma venda
type SaleResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	UserName  string             `json:"user_name,omitempty"`
	Total     float64            `json:"total"`
	Profit    float64            `json:"profit"`
	Notes     string             `json:"notes,omitempty"`
	Items     []SaleItemResponse `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
}

// ToSaleItemInputs converte as linhas da requisição para o formato do domínio
func ToSaleItemInputs(items []SaleItemRequest) []sale.NewItemInput {
	inputs := make([]sale.NewItemInput, len(items))
	for i, item := range items {
		inputs[i] = sale.NewItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return inputs
}

// ToSaleResponse converte uma venda do domínio para DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			BuyPrice:    item.BuyPrice,
			Total:       item.Total,
			Profit:      item.Profit,
		}
	}

	return SaleResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		Total:     s.Total,
		Profit:    s.Profit,
		Notes:     s.Notes,
		Items:     items,
		CreatedAt: s.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTOs
func ToSaleListResponse(sales []*sale.Sale) []SaleResponse {
	data := make([]SaleResponse, len(sales))
	for i, s := range sales {
		data[i] = ToSaleResponse(s)
	}
	return data
}
