package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName      = errors.New("nome do cliente não pode ser vazio")
	ErrInvalidAmount        = errors.New("valor deve ser maior que zero")
	ErrAmountExceedsBalance = errors.New("valor excede o saldo restante da dívida")
)

// Payment representa um pagamento aplicado a uma dívida
type Payment struct {
	ID        string    `json:"id"`
	DebtID    string    `json:"debt_id"`
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Debt representa uma dívida de cliente. O saldo restante obedece sempre
// a Remaining = TotalAmount - PaidAmount e nunca fica negativo.
type Debt struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	TotalAmount float64   `json:"total_amount"`
	PaidAmount  float64   `json:"paid_amount"`
	Remaining   float64   `json:"remaining"`
	Description string    `json:"description,omitempty"`
	Payments    []Payment `json:"payments"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDebt cria uma nova dívida com o saldo restante igual ao valor total
func NewDebt(clientName string, totalAmount float64, description string) (*Debt, error) {
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if totalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Debt{
		ID:          uuid.New().String(),
		ClientName:  clientName,
		TotalAmount: totalAmount,
		PaidAmount:  0,
		Remaining:   totalAmount,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}

// ApplyPayment aplica um pagamento à dívida, validando o saldo restante
func (d *Debt) ApplyPayment(amount float64, notes string) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > d.Remaining {
		return nil, ErrAmountExceedsBalance
	}

	p := &Payment{
		ID:        uuid.New().String(),
		DebtID:    d.ID,
		Amount:    amount,
		Notes:     notes,
		CreatedAt: time.Now(),
	}

	d.PaidAmount += amount
	d.Remaining -= amount
	d.Payments = append([]Payment{*p}, d.Payments...)

	return p, nil
}

// IsSettled verifica se a dívida foi totalmente quitada. O estado "paga"
// é derivado do saldo, não armazenado.
func (d *Debt) IsSettled() bool {
	return d.Remaining == 0
}
