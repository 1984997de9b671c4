package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/debt"
)

// Erros específicos do repositório
var (
	ErrDebtNotFound         = errors.New("dívida não encontrada")
	ErrAmountExceedsBalance = errors.New("valor excede o saldo restante da dívida")
)

// DebtRepository implementa a interface debt.Repository
type DebtRepository struct {
	db *pgxpool.Pool
}

// NewDebtRepository cria uma nova instância de DebtRepository
func NewDebtRepository(db *pgxpool.Pool) debt.Repository {
	return &DebtRepository{
		db: db,
	}
}

// Create implementa debt.Repository.Create
func (r *DebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO debts (id, client_name, total_amount, paid_amount,
			remaining, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.ClientName, d.TotalAmount, d.PaidAmount, d.Remaining,
		d.Description, d.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar dívida: %w", err)
	}

	return nil
}

// FindByID implementa debt.Repository.FindByID
func (r *DebtRepository) FindByID(ctx context.Context, id string) (*debt.Debt, error) {
	var d debt.Debt

	err := r.db.QueryRow(ctx,
		`SELECT id, client_name, total_amount, paid_amount, remaining,
			description, created_at
		FROM debts WHERE id = $1`,
		id).Scan(&d.ID, &d.ClientName, &d.TotalAmount, &d.PaidAmount,
		&d.Remaining, &d.Description, &d.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("erro ao buscar dívida: %w", err)
	}

	if err := r.loadPayments(ctx, &d); err != nil {
		return nil, err
	}

	return &d, nil
}

// List implementa debt.Repository.List
func (r *DebtRepository) List(ctx context.Context) ([]*debt.Debt, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_name, total_amount, paid_amount, remaining,
			description, created_at
		FROM debts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar dívidas: %w", err)
	}
	defer rows.Close()

	debts := make([]*debt.Debt, 0)
	for rows.Next() {
		var d debt.Debt
		err := rows.Scan(&d.ID, &d.ClientName, &d.TotalAmount, &d.PaidAmount,
			&d.Remaining, &d.Description, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler dívida: %w", err)
		}
		debts = append(debts, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer dívidas: %w", err)
	}

	for _, d := range debts {
		if err := r.loadPayments(ctx, d); err != nil {
			return nil, err
		}
	}

	return debts, nil
}

// AddPayment implementa debt.Repository.AddPayment. A linha da dívida é
// bloqueada antes da validação do saldo, de forma que dois pagamentos
// concorrentes não possam exceder juntos o valor restante. O pagamento e
// a atualização do saldo são confirmados juntos ou desfeitos juntos.
func (r *DebtRepository) AddPayment(ctx context.Context, debtID string, amount float64, notes string) (*debt.Payment, *debt.Debt, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var remaining float64
	err = tx.QueryRow(ctx,
		`SELECT remaining FROM debts WHERE id = $1 FOR UPDATE`,
		debtID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrDebtNotFound
		}
		return nil, nil, fmt.Errorf("erro ao buscar dívida: %w", err)
	}

	if amount > remaining {
		return nil, nil, fmt.Errorf("%w (restante: %.2f, pagamento: %.2f)",
			ErrAmountExceedsBalance, remaining, amount)
	}

	p := &debt.Payment{
		ID:     uuid.New().String(),
		DebtID: debtID,
		Amount: amount,
		Notes:  notes,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO payments (id, debt_id, amount, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		p.ID, p.DebtID, p.Amount, p.Notes).Scan(&p.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao registrar pagamento: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE debts SET paid_amount = paid_amount + $1, remaining = remaining - $1
		WHERE id = $2`,
		amount, debtID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao atualizar saldo da dívida: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("erro ao confirmar transação do pagamento: %w", err)
	}

	d, err := r.FindByID(ctx, debtID)
	if err != nil {
		return nil, nil, err
	}

	return p, d, nil
}

// loadPayments carrega os pagamentos de uma dívida, mais recentes primeiro
func (r *DebtRepository) loadPayments(ctx context.Context, d *debt.Debt) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, debt_id, amount, notes, created_at
		FROM payments WHERE debt_id = $1 ORDER BY created_at DESC`,
		d.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar pagamentos: %w", err)
	}
	defer rows.Close()

	d.Payments = make([]debt.Payment, 0)
	for rows.Next() {
		var p debt.Payment
		if err := rows.Scan(&p.ID, &p.DebtID, &p.Amount, &p.Notes, &p.CreatedAt); err != nil {
			return fmt.Errorf("erro ao ler pagamento: %w", err)
		}
		d.Payments = append(d.Payments, p)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer pagamentos: %w", err)
	}

	return nil
}
