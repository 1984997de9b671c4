package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/purchase"
)

// Erros específicos do repositório
var (
	ErrPurchaseNotFound = errors.New("compra não encontrada")
)

// PurchaseRepository implementa a interface purchase.Repository
type PurchaseRepository struct {
	db *pgxpool.Pool
}

// NewPurchaseRepository cria uma nova instância de PurchaseRepository
func NewPurchaseRepository(db *pgxpool.Pool) purchase.Repository {
	return &PurchaseRepository{
		db: db,
	}
}

// Create implementa purchase.Repository.Create. Os incrementos de estoque
// dos itens STOCK e a gravação da compra acontecem na mesma transação;
// itens FREE nunca tocam a tabela de produtos.
func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) (*purchase.Purchase, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range p.Items {
		item := &p.Items[i]
		if item.ItemType != purchase.ItemTypeStock {
			continue
		}

		var name string
		err := tx.QueryRow(ctx,
			`SELECT name FROM products WHERE id = $1 FOR UPDATE`,
			item.ProductID).Scan(&name)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("erro ao buscar produto da compra: %w", err)
		}
		item.ProductName = name

		_, err = tx.Exec(ctx,
			`UPDATE products SET quantity = quantity + $1, updated_at = NOW() WHERE id = $2`,
			item.Quantity, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("erro ao incrementar estoque do produto: %w", err)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO purchases (id, user_id, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, p.Total, p.Notes, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar compra: %w", err)
	}

	for _, item := range p.Items {
		var productID interface{}
		if item.ItemType == purchase.ItemTypeStock {
			productID = item.ProductID
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO purchase_items (id, purchase_id, product_id, description,
				item_type, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.PurchaseID, productID, item.Description,
			item.ItemType, item.Quantity, item.UnitPrice, item.Total)
		if err != nil {
			return nil, fmt.Errorf("erro ao registrar item da compra: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar transação da compra: %w", err)
	}

	_ = r.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, p.UserID).Scan(&p.UserName)

	return p, nil
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Purchase, error) {
	var p purchase.Purchase

	err := r.db.QueryRow(ctx,
		`SELECT c.id, c.user_id, u.name, c.total, c.notes, c.created_at
		FROM purchases c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`,
		id).Scan(&p.ID, &p.UserID, &p.UserName, &p.Total, &p.Notes, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar compra: %w", err)
	}

	if err := r.loadItems(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// List implementa purchase.Repository.List
func (r *PurchaseRepository) List(ctx context.Context, date time.Time) ([]*purchase.Purchase, error) {
	query := `SELECT c.id, c.user_id, u.name, c.total, c.notes, c.created_at
		FROM purchases c
		JOIN users u ON u.id = c.user_id`
	args := []interface{}{}

	if !date.IsZero() {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		query += ` WHERE c.created_at >= $1 AND c.created_at < $2`
		args = append(args, start, start.AddDate(0, 0, 1))
	}

	query += ` ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar compras: %w", err)
	}
	defer rows.Close()

	purchases := make([]*purchase.Purchase, 0)
	for rows.Next() {
		var p purchase.Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.UserName, &p.Total, &p.Notes, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler compra: %w", err)
		}
		purchases = append(purchases, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer compras: %w", err)
	}

	for _, p := range purchases {
		if err := r.loadItems(ctx, p); err != nil {
			return nil, err
		}
	}

	return purchases, nil
}

// loadItems carrega os itens de uma compra com o nome do produto quando houver
func (r *PurchaseRepository) loadItems(ctx context.Context, p *purchase.Purchase) error {
	rows, err := r.db.Query(ctx,
		`SELECT ci.id, ci.purchase_id, ci.product_id, p.name, ci.description,
			ci.item_type, ci.quantity, ci.unit_price, ci.total
		FROM purchase_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.purchase_id = $1
		ORDER BY ci.item_type ASC, ci.id ASC`,
		p.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar itens da compra: %w", err)
	}
	defer rows.Close()

	p.Items = make([]purchase.Item, 0)
	for rows.Next() {
		var item purchase.Item
		var productID, productName *string

		err := rows.Scan(&item.ID, &item.PurchaseID, &productID, &productName,
			&item.Description, &item.ItemType, &item.Quantity, &item.UnitPrice, &item.Total)
		if err != nil {
			return fmt.Errorf("erro ao ler item da compra: %w", err)
		}

		if productID != nil {
			item.ProductID = *productID
		}
		if productName != nil {
			item.ProductName = *productName
		}

		p.Items = append(p.Items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens da compra: %w", err)
	}

	return nil
}
