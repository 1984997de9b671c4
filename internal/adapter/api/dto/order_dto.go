package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/order"
)

// OrderItemRequest representa uma linha de encomenda recebida na requisição
type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// OrderRequest representa os dados para criar ou atualizar uma encomenda.
// Os itens são opcionais: uma encomenda pode conter apenas a descrição
// livre do pedido.
type OrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	Images      []string           `json:"images" binding:"omitempty,dive,required"`
	Notes       string             `json:"notes"`
	ClientName  string             `json:"client_name"`
	ClientPhone string             `json:"client_phone"`
	Description string             `json:"description"`
}

// OrderStatusRequest representa os dados para mudança de status
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDENTE EM_ANDAMENTO COMPLETA CONCLUIDA CANCELADA"`
}

// OrderItemResponse representa uma linha de encomenda na resposta
type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// OrderImageResponse representa uma imagem de encomenda na resposta
type OrderImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// OrderResponse representa a resposta com dados de uma encomenda
type OrderResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	UserName    string               `json:"user_name,omitempty"`
	Status      string               `json:"status"`
	Total       float64              `json:"total"`
	Notes       string               `json:"notes,omitempty"`
	ClientName  string               `json:"client_name,omitempty"`
	ClientPhone string               `json:"client_phone,omitempty"`
	Description string               `json:"description,omitempty"`
	Items       []OrderItemResponse  `json:"items"`
	Images      []OrderImageResponse `json:"images"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToOrderResponse converte uma encomenda do domínio para DTO de resposta
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	images := make([]OrderImageResponse, len(o.Images))
	for i, img := range o.Images {
		images[i] = OrderImageResponse{
			ID:  img.ID,
			URL: img.URL,
		}
	}

	return OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		UserName:    o.UserName,
		Status:      string(o.Status),
		Total:       o.Total,
		Notes:       o.Notes,
		ClientName:  o.ClientName,
		ClientPhone: o.ClientPhone,
		Description: o.Description,
		Items:       items,
		Images:      images,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOrderListResponse converte uma lista de encomendas do domínio para DTOs
func ToOrderListResponse(orders []*order.Order) []OrderResponse {
	data := make([]OrderResponse, len(orders))
	for i, o := range orders {
		data[i] = ToOrderResponse(o)
	}
	return data
}
