package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems          = errors.New("a compra deve ter pelo menos um item")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior que zero")
	ErrInvalidPrice     = errors.New("preço unitário deve ser maior que zero")
	ErrEmptyDescription = errors.New("descrição do item livre não pode ser vazia")
)

// ItemType identifica se a linha da compra movimenta estoque ou é um gasto livre
type ItemType string

const (
	// ItemTypeStock referencia um produto e incrementa o estoque
	ItemTypeStock ItemType = "STOCK"
	// ItemTypeFree é um gasto avulso, apenas descrição, sem efeito no estoque
	ItemTypeFree ItemType = "FREE"
)

// Item representa uma linha de compra, de estoque ou livre
type Item struct {
	ID          string   `json:"id"`
	PurchaseID  string   `json:"purchase_id"`
	ProductID   string   `json:"product_id,omitempty"`
	ProductName string   `json:"product_name,omitempty"`
	Description string   `json:"description,omitempty"`
	ItemType    ItemType `json:"item_type"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	Total       float64  `json:"total"`
}

// Purchase representa uma compra com seus itens
type Purchase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Total     float64   `json:"total"`
	Notes     string    `json:"notes,omitempty"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStockItem cria uma linha de compra vinculada a um produto
func NewStockItem(productID string, quantity int, unitPrice float64) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		ItemType:  ItemTypeStock,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     float64(quantity) * unitPrice,
	}, nil
}

// NewFreeItem cria uma linha de compra avulsa, sem produto associado
func NewFreeItem(description string, quantity int, unitPrice float64) (*Item, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Item{
		ID:          uuid.New().String(),
		Description: description,
		ItemType:    ItemTypeFree,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       float64(quantity) * unitPrice,
	}, nil
}

// NewPurchase cria uma compra somando o total de todos os itens
func NewPurchase(userID string, items []Item, notes string) (*Purchase, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	p := &Purchase{
		ID:        uuid.New().String(),
		UserID:    userID,
		Notes:     notes,
		Items:     items,
		CreatedAt: time.Now(),
	}

	for i := range p.Items {
		p.Items[i].PurchaseID = p.ID
		p.Total += p.Items[i].Total
	}

	return p, nil
}
