package dto

import (
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/user"
)

// UserUpdateRequest representa os dados para atualização de um usuário
type UserUpdateRequest struct {
	Name   string `json:"name" binding:"omitempty,min=2"`
	Email  string `json:"email" binding:"omitempty,email"`
	Role   string `json:"role" binding:"omitempty,oneof=ADMIN GERENTE FUNCIONARIO"`
	Active *bool  `json:"active"`
}

// UserResponse representa a resposta com dados de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTOs
func ToUserListResponse(users []*user.User) []UserResponse {
	data := make([]UserResponse, len(users))
	for i, u := range users {
		data[i] = ToUserResponse(u)
	}
	return data
}
