package report

import (
	"context"

	"github.com/stockpro/stockpro-api/internal/domain/product"
)

// StockReport resume a situação do estoque
type StockReport struct {
	TotalProducts      int                `json:"total_products"`
	TotalInvested      float64            `json:"total_invested"`
	TotalPotentialSale float64            `json:"total_potential_sale"`
	LowStockProducts   []*product.Product `json:"low_stock_products"`
	LowStockCount      int                `json:"low_stock_count"`
}

// SalesReport resume as vendas do dia e do mês corrente
type SalesReport struct {
	DailyTotal    float64 `json:"daily_total"`
	DailyProfit   float64 `json:"daily_profit"`
	DailyCount    int     `json:"daily_count"`
	MonthlyTotal  float64 `json:"monthly_total"`
	MonthlyProfit float64 `json:"monthly_profit"`
	MonthlyCount  int     `json:"monthly_count"`
}

// PurchasesReport resume as compras do dia
type PurchasesReport struct {
	DailyTotal float64 `json:"daily_total"`
	DailyCount int     `json:"daily_count"`
}

// OrdersReport resume as encomendas por status
type OrdersReport struct {
	Total       int     `json:"total"`
	Pendente    int     `json:"pendente"`
	EmAndamento int     `json:"em_andamento"`
	Completa    int     `json:"completa"`
	Concluida   int     `json:"concluida"`
	Cancelada   int     `json:"cancelada"`
	TotalValue  float64 `json:"total_value"`
}

// DebtsReport resume as dívidas registradas
type DebtsReport struct {
	TotalDebt      float64 `json:"total_debt"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRemaining float64 `json:"total_remaining"`
	ActiveDebts    int     `json:"active_debts"`
}

// Report agrega todos os relatórios do painel
type Report struct {
	Stock     StockReport     `json:"stock"`
	Sales     SalesReport     `json:"sales"`
	Purchases PurchasesReport `json:"purchases"`
	Orders    OrdersReport    `json:"orders"`
	Debts     DebtsReport     `json:"debts"`
}

// Repository define a interface para geração de relatórios
type Repository interface {
	// Generate monta o relatório consolidado do momento atual
	Generate(ctx context.Context) (*Report, error)
}
