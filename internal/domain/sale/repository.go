package sale

import (
	"context"
	"time"
)

// NewItemInput representa uma linha recebida na criação de uma venda
type NewItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create registra uma venda em uma única transação: valida o estoque,
	// decrementa a quantidade dos produtos e persiste a venda com seus itens
	Create(ctx context.Context, userID string, items []NewItemInput, notes string) (*Sale, error)

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas mais recentes primeiro; se date não for zero,
	// filtra pelas vendas do dia
	List(ctx context.Context, date time.Time) ([]*Sale, error)
}
