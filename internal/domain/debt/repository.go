package debt

import (
	"context"
)

// Repository define a interface para operações de repositório de dívidas
type Repository interface {
	// Create cria uma nova dívida
	Create(ctx context.Context, d *Debt) error

	// FindByID busca uma dívida pelo ID, com seus pagamentos
	FindByID(ctx context.Context, id string) (*Debt, error)

	// List lista as dívidas mais recentes primeiro, com seus pagamentos
	List(ctx context.Context) ([]*Debt, error)

	// AddPayment aplica um pagamento à dívida em uma única transação:
	// insere o pagamento e atualiza o valor pago e o saldo restante
	AddPayment(ctx context.Context, debtID string, amount float64, notes string) (*Payment, *Debt, error)
}
