package purchase

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de compras
type Repository interface {
	// Create registra uma compra em uma única transação: incrementa o
	// estoque dos itens do tipo STOCK e persiste a compra com seus itens
	Create(ctx context.Context, p *Purchase) (*Purchase, error)

	// FindByID busca uma compra pelo ID
	FindByID(ctx context.Context, id string) (*Purchase, error)

	// List lista as compras mais recentes primeiro; se date não for zero,
	// filtra pelas compras do dia
	List(ctx context.Context, date time.Time) ([]*Purchase, error)
}
