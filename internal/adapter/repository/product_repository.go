package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound      = errors.New("produto não encontrado")
	ErrProductDatabaseError = errors.New("erro de banco de dados")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, category, buy_price, sell_price, quantity, min_quantity,
			active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.Category, p.BuyPrice, p.SellPrice, p.Quantity,
		p.MinQuantity, p.Active, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT id, name, category, buy_price, sell_price, quantity,
			min_quantity, active, created_at, updated_at
		FROM products WHERE id = $1`,
		id).Scan(
		&p.ID, &p.Name, &p.Category, &p.BuyPrice, &p.SellPrice, &p.Quantity,
		&p.MinQuantity, &p.Active, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, buy_price, sell_price, quantity,
			min_quantity, active, created_at, updated_at
		FROM products WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListAll implementa product.Repository.ListAll
func (r *ProductRepository) ListAll(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, buy_price, sell_price, quantity,
			min_quantity, active, created_at, updated_at
		FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, category = $2, buy_price = $3, sell_price = $4,
			quantity = $5, min_quantity = $6, active = $7, updated_at = $8
		WHERE id = $9`,
		p.Name, p.Category, p.BuyPrice, p.SellPrice, p.Quantity,
		p.MinQuantity, p.Active, p.UpdatedAt, p.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Deactivate implementa product.Repository.Deactivate
func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET active = false, updated_at = NOW() WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("erro ao desativar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// scanProducts converte as linhas do resultado em produtos
func scanProducts(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.BuyPrice, &p.SellPrice,
			&p.Quantity, &p.MinQuantity, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}
