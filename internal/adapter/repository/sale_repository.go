package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/sale"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create. Toda a operação acontece em
// uma única transação: a leitura do produto bloqueia a linha (FOR UPDATE),
// de forma que duas vendas concorrentes sobre o mesmo produto se
// serializam e a última a obter o bloqueio relê a quantidade já
// decrementada. Qualquer falha desfaz todas as baixas de estoque já
// aplicadas na mesma chamada.
func (r *SaleRepository) Create(ctx context.Context, userID string, inputs []sale.NewItemInput, notes string) (*sale.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	items := make([]sale.Item, 0, len(inputs))

	for _, in := range inputs {
		var name string
		var buyPrice float64
		var available int

		err := tx.QueryRow(ctx,
			`SELECT name, buy_price, quantity FROM products WHERE id = $1 FOR UPDATE`,
			in.ProductID).Scan(&name, &buyPrice, &available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, in.ProductID)
			}
			return nil, fmt.Errorf("erro ao buscar produto da venda: %w", err)
		}

		if available < in.Quantity {
			return nil, fmt.Errorf("%w para %q (disponível: %d, solicitado: %d)",
				ErrInsufficientStock, name, available, in.Quantity)
		}

		_, err = tx.Exec(ctx,
			`UPDATE products SET quantity = quantity - $1, updated_at = NOW() WHERE id = $2`,
			in.Quantity, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("erro ao baixar estoque do produto: %w", err)
		}

		item, err := sale.NewItem(in.ProductID, in.Quantity, in.UnitPrice, buyPrice)
		if err != nil {
			return nil, err
		}
		item.ProductName = name
		items = append(items, *item)
	}

	s, err := sale.NewSale(userID, items, notes)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (id, user_id, total, profit, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.Total, s.Profit, s.Notes, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar venda: %w", err)
	}

	for _, item := range s.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_items (id, sale_id, product_id, quantity,
				unit_price, buy_price, total, profit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.SaleID, item.ProductID, item.Quantity,
			item.UnitPrice, item.BuyPrice, item.Total, item.Profit)
		if err != nil {
			return nil, fmt.Errorf("erro ao registrar item da venda: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar transação da venda: %w", err)
	}

	// Nome do vendedor apenas para a resposta
	_ = r.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, s.UserID).Scan(&s.UserName)

	return s, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale

	err := r.db.QueryRow(ctx,
		`SELECT s.id, s.user_id, u.name, s.total, s.profit, s.notes, s.created_at
		FROM sales s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`,
		id).Scan(&s.ID, &s.UserID, &s.UserName, &s.Total, &s.Profit, &s.Notes, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if err := r.loadItems(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, date time.Time) ([]*sale.Sale, error) {
	query := `SELECT s.id, s.user_id, u.name, s.total, s.profit, s.notes, s.created_at
		FROM sales s
		JOIN users u ON u.id = s.user_id`
	args := []interface{}{}

	if !date.IsZero() {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		query += ` WHERE s.created_at >= $1 AND s.created_at < $2`
		args = append(args, start, start.AddDate(0, 0, 1))
	}

	query += ` ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.Total, &s.Profit, &s.Notes, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	for _, s := range sales {
		if err := r.loadItems(ctx, s); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

// loadItems carrega os itens de uma venda com o nome do produto
func (r *SaleRepository) loadItems(ctx context.Context, s *sale.Sale) error {
	rows, err := r.db.Query(ctx,
		`SELECT si.id, si.sale_id, si.product_id, p.name, si.quantity,
			si.unit_price, si.buy_price, si.total, si.profit
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY p.name ASC`,
		s.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar itens da venda: %w", err)
	}
	defer rows.Close()

	s.Items = make([]sale.Item, 0)
	for rows.Next() {
		var item sale.Item
		err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.BuyPrice, &item.Total, &item.Profit)
		if err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		s.Items = append(s.Items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens da venda: %w", err)
	}

	return nil
}
