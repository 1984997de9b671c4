package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/note"
)

// NoteRequest representa os dados para criar uma anotação
type NoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	OrderID string `json:"order_id"`
}

// NoteResponse representa a resposta com dados de uma anotação
type NoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNoteResponse converte uma anotação do domínio para DTO de resposta
func ToNoteResponse(n *note.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		UserName:  n.UserName,
		OrderID:   n.OrderID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}

// ToNoteListResponse converte uma lista de anotações do domínio para DTOs
func ToNoteListResponse(notes []*note.Note) []NoteResponse {
	data := make([]NoteResponse, len(notes))
	for i, n := range notes {
		data[i] = ToNoteResponse(n)
	}
	return data
}
