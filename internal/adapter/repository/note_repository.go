package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpro/stockpro-api/internal/domain/note"
)

// Erros específicos do repositório
var (
	ErrNoteNotFound = errors.New("anotação não encontrada")
)

// NoteRepository implementa a interface note.Repository
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository cria uma nova instância de NoteRepository
func NewNoteRepository(db *pgxpool.Pool) note.Repository {
	return &NoteRepository{
		db: db,
	}
}

// Create implementa note.Repository.Create
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	var orderID interface{}
	if n.OrderID != "" {
		orderID = n.OrderID
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO notes (id, user_id, order_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, orderID, n.Title, n.Content, n.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar anotação: %w", err)
	}

	return nil
}

// FindByID implementa note.Repository.FindByID
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*note.Note, error) {
	var n note.Note
	var orderID *string

	err := r.db.QueryRow(ctx,
		`SELECT n.id, n.user_id, u.name, n.order_id, n.title, n.content, n.created_at
		FROM notes n
		JOIN users u ON u.id = n.user_id
		WHERE n.id = $1`,
		id).Scan(&n.ID, &n.UserID, &n.UserName, &orderID, &n.Title, &n.Content, &n.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("erro ao buscar anotação: %w", err)
	}

	if orderID != nil {
		n.OrderID = *orderID
	}

	return &n, nil
}

// List implementa note.Repository.List
func (r *NoteRepository) List(ctx context.Context, userID string) ([]*note.Note, error) {
	query := `SELECT n.id, n.user_id, u.name, n.order_id, n.title, n.content, n.created_at
		FROM notes n
		JOIN users u ON u.id = n.user_id`
	args := []interface{}{}

	if userID != "" {
		query += ` WHERE n.user_id = $1`
		args = append(args, userID)
	}

	query += ` ORDER BY n.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anotações: %w", err)
	}
	defer rows.Close()

	notes := make([]*note.Note, 0)
	for rows.Next() {
		var n note.Note
		var orderID *string

		err := rows.Scan(&n.ID, &n.UserID, &n.UserName, &orderID, &n.Title, &n.Content, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler anotação: %w", err)
		}

		if orderID != nil {
			n.OrderID = *orderID
		}

		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer anotações: %w", err)
	}

	return notes, nil
}

// Delete implementa note.Repository.Delete
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover anotação: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoteNotFound
	}

	return nil
}
