package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/product"
	"github.com/stockpro/stockpro-api/internal/domain/report"
)

// ReportRepository implementa a interface report.Repository
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *pgxpool.Pool) report.Repository {
	return &ReportRepository{
		db: db,
	}
}

// Generate implementa report.Repository.Generate
func (r *ReportRepository) Generate(ctx context.Context) (*report.Report, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	rep := &report.Report{}

	if err := r.stockReport(ctx, &rep.Stock); err != nil {
		return nil, err
	}
	if err := r.salesReport(ctx, &rep.Sales, startOfDay, endOfDay, startOfMonth); err != nil {
		return nil, err
	}
	if err := r.purchasesReport(ctx, &rep.Purchases, startOfDay, endOfDay); err != nil {
		return nil, err
	}
	if err := r.ordersReport(ctx, &rep.Orders); err != nil {
		return nil, err
	}
	if err := r.debtsReport(ctx, &rep.Debts); err != nil {
		return nil, err
	}

	return rep, nil
}

// stockReport calcula os totais de estoque e a lista de produtos abaixo do mínimo
func (r *ReportRepository) stockReport(ctx context.Context, s *report.StockReport) error {
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(buy_price * quantity), 0),
			COALESCE(SUM(sell_price * quantity), 0)
		FROM products WHERE active = true`).Scan(
		&s.TotalProducts, &s.TotalInvested, &s.TotalPotentialSale)
	if err != nil {
		return fmt.Errorf("erro ao calcular relatório de estoque: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, buy_price, sell_price, quantity,
			min_quantity, active, created_at, updated_at
		FROM products
		WHERE active = true AND quantity <= min_quantity
		ORDER BY name ASC`)
	if err != nil {
		return fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	s.LowStockProducts = make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.BuyPrice, &p.SellPrice,
			&p.Quantity, &p.MinQuantity, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("erro ao ler produto com estoque baixo: %w", err)
		}
		s.LowStockProducts = append(s.LowStockProducts, &p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer produtos com estoque baixo: %w", err)
	}

	s.LowStockCount = len(s.LowStockProducts)
	return nil
}

// salesReport calcula os totais de vendas do dia e do mês
func (r *ReportRepository) salesReport(ctx context.Context, s *report.SalesReport, startOfDay, endOfDay, startOfMonth time.Time) error {
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COALESCE(SUM(profit), 0), COUNT(*)
		FROM sales WHERE created_at >= $1 AND created_at < $2`,
		startOfDay, endOfDay).Scan(&s.DailyTotal, &s.DailyProfit, &s.DailyCount)
	if err != nil {
		return fmt.Errorf("erro ao calcular vendas do dia: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COALESCE(SUM(profit), 0), COUNT(*)
		FROM sales WHERE created_at >= $1`,
		startOfMonth).Scan(&s.MonthlyTotal, &s.MonthlyProfit, &s.MonthlyCount)
	if err != nil {
		return fmt.Errorf("erro ao calcular vendas do mês: %w", err)
	}

	return nil
}

// purchasesReport calcula os totais de compras do dia
func (r *ReportRepository) purchasesReport(ctx context.Context, p *report.PurchasesReport, startOfDay, endOfDay time.Time) error {
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM purchases WHERE created_at >= $1 AND created_at < $2`,
		startOfDay, endOfDay).Scan(&p.DailyTotal, &p.DailyCount)
	if err != nil {
		return fmt.Errorf("erro ao calcular compras do dia: %w", err)
	}
	return nil
}

// ordersReport conta as encomendas por status
func (r *ReportRepository) ordersReport(ctx context.Context, o *report.OrdersReport) error {
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDENTE'),
			COUNT(*) FILTER (WHERE status = 'EM_ANDAMENTO'),
			COUNT(*) FILTER (WHERE status = 'COMPLETA'),
			COUNT(*) FILTER (WHERE status = 'CONCLUIDA'),
			COUNT(*) FILTER (WHERE status = 'CANCELADA'),
			COALESCE(SUM(total), 0)
		FROM orders`).Scan(
		&o.Total, &o.Pendente, &o.EmAndamento, &o.Completa,
		&o.Concluida, &o.Cancelada, &o.TotalValue)
	if err != nil {
		return fmt.Errorf("erro ao calcular relatório de encomendas: %w", err)
	}
	return nil
}

// debtsReport calcula os totais das dívidas
func (r *ReportRepository) debtsReport(ctx context.Context, d *report.DebtsReport) error {
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(paid_amount), 0),
			COALESCE(SUM(remaining), 0),
			COUNT(*) FILTER (WHERE remaining > 0)
		FROM debts`).Scan(
		&d.TotalDebt, &d.TotalPaid, &d.TotalRemaining, &d.ActiveDebts)
	if err != nil {
		return fmt.Errorf("erro ao calcular relatório de dívidas: %w", err)
	}
	return nil
}
