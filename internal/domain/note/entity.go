package note

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle   = errors.New("título não pode ser vazio")
	ErrEmptyContent = errors.New("conteúdo não pode ser vazio")
)

// Note representa uma anotação de um usuário, opcionalmente vinculada a
// uma encomenda (referência fraca, sem posse)
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote cria uma nova anotação
func NewNote(userID, orderID, title, content string) (*Note, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		OrderID:   orderID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}

// IsOwnedBy verifica se a anotação pertence ao usuário informado
func (n *Note) IsOwnedBy(userID string) bool {
	return n.UserID == userID
}
