package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/order"
)

// Erros específicos do repositório
var (
	ErrOrderNotFound = errors.New("encomenda não encontrada")
)

// OrderRepository implementa a interface order.Repository
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{
		db: db,
	}
}

// Create implementa order.Repository.Create
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, status, total, notes, client_name,
			client_phone, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.UserID, o.Status, o.Total, o.Notes, o.ClientName,
		o.ClientPhone, o.Description, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar encomenda: %w", err)
	}

	if err := insertOrderChildren(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação da encomenda: %w", err)
	}

	return nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order

	err := r.db.QueryRow(ctx,
		`SELECT e.id, e.user_id, u.name, e.status, e.total, e.notes,
			e.client_name, e.client_phone, e.description, e.created_at, e.updated_at
		FROM orders e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1`,
		id).Scan(&o.ID, &o.UserID, &o.UserName, &o.Status, &o.Total, &o.Notes,
		&o.ClientName, &o.ClientPhone, &o.Description, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar encomenda: %w", err)
	}

	if err := r.loadChildren(ctx, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

// List implementa order.Repository.List
func (r *OrderRepository) List(ctx context.Context, userID string, status order.Status) ([]*order.Order, error) {
	query := `SELECT e.id, e.user_id, u.name, e.status, e.total, e.notes,
		e.client_name, e.client_phone, e.description, e.created_at, e.updated_at
		FROM orders e
		JOIN users u ON u.id = e.user_id
		WHERE 1=1`
	args := []interface{}{}

	if userID != "" {
		args = append(args, userID)
		query += fmt.Sprintf(" AND e.user_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}

	query += ` ORDER BY e.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar encomendas: %w", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var o order.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.Status, &o.Total, &o.Notes,
			&o.ClientName, &o.ClientPhone, &o.Description, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler encomenda: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer encomendas: %w", err)
	}

	for _, o := range orders {
		if err := r.loadChildren(ctx, o); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus. A linha da
// encomenda é bloqueada antes de decidir sobre a baixa de estoque, de
// forma que duas conclusões concorrentes da mesma encomenda se
// serializam e apenas a primeira baixa o estoque.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var current order.Status
	err = tx.QueryRow(ctx,
		`SELECT status FROM orders WHERE id = $1 FOR UPDATE`,
		id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar encomenda: %w", err)
	}

	// Somente a entrada em CONCLUIDA baixa o estoque, e no máximo uma vez.
	// Encomendas sem itens concluem sem efeito no estoque.
	if status == order.StatusConcluida && current != order.StatusConcluida {
		if err := r.decrementStock(ctx, tx, id); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar status da encomenda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar transação da encomenda: %w", err)
	}

	return r.FindByID(ctx, id)
}

// decrementStock baixa o estoque de todos os itens da encomenda dentro
// da transação informada
func (r *OrderRepository) decrementStock(ctx context.Context, tx pgx.Tx, orderID string) error {
	rows, err := tx.Query(ctx,
		`SELECT product_id, quantity FROM order_items WHERE order_id = $1`,
		orderID)
	if err != nil {
		return fmt.Errorf("erro ao listar itens da encomenda: %w", err)
	}

	type line struct {
		productID string
		quantity  int
	}
	lines := make([]line, 0)
	for rows.Next() {
		var l line
		if err := rows.Scan(&l.productID, &l.quantity); err != nil {
			rows.Close()
			return fmt.Errorf("erro ao ler item da encomenda: %w", err)
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens da encomenda: %w", err)
	}

	for _, l := range lines {
		var name string
		var available int

		err := tx.QueryRow(ctx,
			`SELECT name, quantity FROM products WHERE id = $1 FOR UPDATE`,
			l.productID).Scan(&name, &available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, l.productID)
			}
			return fmt.Errorf("erro ao buscar produto da encomenda: %w", err)
		}

		if available < l.quantity {
			return fmt.Errorf("%w para %q (disponível: %d, solicitado: %d)",
				ErrInsufficientStock, name, available, l.quantity)
		}

		_, err = tx.Exec(ctx,
			`UPDATE products SET quantity = quantity - $1, updated_at = NOW() WHERE id = $2`,
			l.quantity, l.productID)
		if err != nil {
			return fmt.Errorf("erro ao baixar estoque do produto: %w", err)
		}
	}

	return nil
}

// Update implementa order.Repository.Update, substituindo itens e imagens
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE orders SET status = $1, total = $2, notes = $3, client_name = $4,
			client_phone = $5, description = $6, updated_at = $7
		WHERE id = $8`,
		o.Status, o.Total, o.Notes, o.ClientName, o.ClientPhone,
		o.Description, o.UpdatedAt, o.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar encomenda: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("erro ao remover itens antigos da encomenda: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM order_images WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("erro ao remover imagens antigas da encomenda: %w", err)
	}

	if err := insertOrderChildren(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação da encomenda: %w", err)
	}

	return nil
}

// Delete implementa order.Repository.Delete
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover encomenda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// insertOrderChildren insere itens e imagens da encomenda na transação
func insertOrderChildren(ctx context.Context, tx pgx.Tx, o *order.Order) error {
	for _, item := range o.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Total)
		if err != nil {
			return fmt.Errorf("erro ao registrar item da encomenda: %w", err)
		}
	}

	for _, img := range o.Images {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_images (id, order_id, url) VALUES ($1, $2, $3)`,
			img.ID, img.OrderID, img.URL)
		if err != nil {
			return fmt.Errorf("erro ao registrar imagem da encomenda: %w", err)
		}
	}

	return nil
}

// loadChildren carrega itens e imagens de uma encomenda
func (r *OrderRepository) loadChildren(ctx context.Context, o *order.Order) error {
	rows, err := r.db.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.unit_price, oi.total
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY p.name ASC`,
		o.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar itens da encomenda: %w", err)
	}
	defer rows.Close()

	o.Items = make([]order.Item, 0)
	for rows.Next() {
		var item order.Item
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Total)
		if err != nil {
			return fmt.Errorf("erro ao ler item da encomenda: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens da encomenda: %w", err)
	}

	imgRows, err := r.db.Query(ctx,
		`SELECT id, order_id, url FROM order_images WHERE order_id = $1 ORDER BY id ASC`,
		o.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar imagens da encomenda: %w", err)
	}
	defer imgRows.Close()

	o.Images = make([]order.Image, 0)
	for imgRows.Next() {
		var img order.Image
		if err := imgRows.Scan(&img.ID, &img.OrderID, &img.URL); err != nil {
			return fmt.Errorf("erro ao ler imagem da encomenda: %w", err)
		}
		o.Images = append(o.Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer imagens da encomenda: %w", err)
	}

	return nil
}
