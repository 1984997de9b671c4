package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/purchase"
)

// PurchaseItemRequest representa uma linha de compra vinculada a um produto
type PurchaseItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// PurchaseFreeItemRequest representa uma linha de compra avulsa, sem produto
type PurchaseFreeItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

// PurchaseRequest representa os dados para registrar uma compra. É
// necessária pelo menos uma linha entre items e free_items.
type PurchaseRequest struct {
	Items     []PurchaseItemRequest     `json:"items" binding:"omitempty,dive"`
	FreeItems []PurchaseFreeItemRequest `json:"free_items" binding:"omitempty,dive"`
	Notes     string                    `json:"notes"`
}

// PurchaseItemResponse representa uma linha de compra na resposta
type PurchaseItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Description string  `json:"description,omitempty"`
	ItemType    string  `json:"item_type"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// PurchaseResponse representa a resposta com dados de uma compra
type PurchaseResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	UserName  string                 `json:"user_name,omitempty"`
	Total     float64                `json:"total"`
	Notes     string                 `json:"notes,omitempty"`
	Items     []PurchaseItemResponse `json:"items"`
	CreatedAt time.Time              `json:"created_at"`
}

// ToPurchaseResponse converte uma compra do domínio para DTO de resposta
func ToPurchaseResponse(p *purchase.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Description: item.Description,
			ItemType:    string(item.ItemType),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	return PurchaseResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Total:     p.Total,
		Notes:     p.Notes,
		Items:     items,
		CreatedAt: p.CreatedAt,
	}
}

// ToPurchaseListResponse converte uma lista de compras do domínio para DTOs
func ToPurchaseListResponse(purchases []*purchase.Purchase) []PurchaseResponse {
	data := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		data[i] = ToPurchaseResponse(p)
	}
	return data
}
