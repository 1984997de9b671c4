package order

import (
	"context"
)

// Repository define a interface para operações de repositório de encomendas
type Repository interface {
	// Create cria uma nova encomenda com seus itens e imagens
	Create(ctx context.Context, o *Order) error

	// FindByID busca uma encomenda pelo ID, com itens e imagens
	FindByID(ctx context.Context, id string) (*Order, error)

	// List lista as encomendas mais recentes primeiro. Se userID não for
	// vazio, filtra pelas encomendas do usuário; se status não for vazio,
	// filtra pelo status.
	List(ctx context.Context, userID string, status Status) ([]*Order, error)

	// UpdateStatus atualiza o status da encomenda. A transição para
	// CONCLUIDA a partir de outro status baixa o estoque dos itens na
	// mesma transação, no máximo uma vez por encomenda.
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)

	// Update atualiza os dados da encomenda, substituindo itens e imagens
	Update(ctx context.Context, o *Order) error

	// Delete remove uma encomenda com seus itens e imagens
	Delete(ctx context.Context, id string) error
}
