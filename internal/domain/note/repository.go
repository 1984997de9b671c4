package note

import (
	"context"
)

// Repository define a interface para operações de repositório de anotações
type Repository interface {
	// Create cria uma nova anotação
	Create(ctx context.Context, n *Note) error

	// FindByID busca uma anotação pelo ID
	FindByID(ctx context.Context, id string) (*Note, error)

	// List lista as anotações mais recentes primeiro. Se userID não for
	// vazio, filtra pelas anotações do usuário.
	List(ctx context.Context, userID string) ([]*Note, error)

	// Delete remove uma anotação
	Delete(ctx context.Context, id string) error
}
