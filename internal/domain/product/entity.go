package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyCategory = errors.New("categoria não pode ser vazia")
	ErrNegativePrice = errors.New("preço não pode ser negativo")
	ErrNegativeStock = errors.New("quantidade não pode ser negativa")
)

// Product representa um produto do estoque
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	BuyPrice    float64   `json:"buy_price"`
	SellPrice   float64   `json:"sell_price"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name, category string, buyPrice, sellPrice float64, quantity, minQuantity int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if buyPrice < 0 || sellPrice < 0 {
		return nil, ErrNegativePrice
	}
	if quantity < 0 || minQuantity < 0 {
		return nil, ErrNegativeStock
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		BuyPrice:    buyPrice,
		SellPrice:   sellPrice,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, category string, buyPrice, sellPrice float64, quantity, minQuantity int) error {
	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if buyPrice < 0 || sellPrice < 0 {
		return ErrNegativePrice
	}
	if quantity < 0 || minQuantity < 0 {
		return ErrNegativeStock
	}

	p.Name = name
	p.Category = category
	p.BuyPrice = buyPrice
	p.SellPrice = sellPrice
	p.Quantity = quantity
	p.MinQuantity = minQuantity
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate desativa o produto (soft delete, produtos nunca são removidos)
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// HasStock verifica se há estoque suficiente para a quantidade solicitada
func (p *Product) HasStock(quantity int) bool {
	return p.Quantity >= quantity
}

// IsLowStock verifica se o produto está abaixo do estoque mínimo
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}
