package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos ativos ordenados por nome
	List(ctx context.Context) ([]*Product, error)

	// ListAll lista todos os produtos, incluindo os inativos
	ListAll(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Deactivate desativa um produto (soft delete)
	Deactivate(ctx context.Context, id string) error
}
