package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/debt"
)

// DebtRequest representa os dados para registrar uma dívida
type DebtRequest struct {
	ClientName  string  `json:"client_name" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// PaymentRequest representa os dados para registrar um pagamento
type PaymentRequest struct {
	DebtID string  `json:"debt_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

// PaymentResponse representa um pagamento na resposta
type PaymentResponse struct {
	ID        string    `json:"id"`
	DebtID    string    `json:"debt_id"`
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DebtResponse representa a resposta com dados de uma dívida
type DebtResponse struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"client_name"`
	TotalAmount float64           `json:"total_amount"`
	PaidAmount  float64           `json:"paid_amount"`
	Remaining   float64           `json:"remaining"`
	Settled     bool              `json:"settled"`
	Description string            `json:"description,omitempty"`
	Payments    []PaymentResponse `json:"payments"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PaymentResultResponse representa a resposta da criação de um pagamento
type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Debt    DebtResponse    `json:"debt"`
}

// ToPaymentResponse converte um pagamento do domínio para DTO de resposta
func ToPaymentResponse(p *debt.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		DebtID:    p.DebtID,
		Amount:    p.Amount,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// ToDebtResponse converte uma dívida do domínio para DTO de resposta
func ToDebtResponse(d *debt.Debt) DebtResponse {
	payments := make([]PaymentResponse, len(d.Payments))
	for i := range d.Payments {
		payments[i] = ToPaymentResponse(&d.Payments[i])
	}

	return DebtResponse{
		ID:          d.ID,
		ClientName:  d.ClientName,
		TotalAmount: d.TotalAmount,
		PaidAmount:  d.PaidAmount,
		Remaining:   d.Remaining,
		Settled:     d.IsSettled(),
		Description: d.Description,
		Payments:    payments,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDebtListResponse converte uma lista de dívidas do domínio para DTOs
func ToDebtListResponse(debts []*debt.Debt) []DebtResponse {
	data := make([]DebtResponse, len(debts))
	for i, d := range debts {
		data[i] = ToDebtResponse(d)
	}
	return data
}
