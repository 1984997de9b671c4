package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrShortPassword = errors.New("senha deve ter pelo menos 6 caracteres")
	ErrInvalidRole   = errors.New("papel de usuário inválido")
)

// Role representa o papel/função do usuário
type Role string

const (
	RoleAdmin       Role = "ADMIN"       // Administrador do sistema
	RoleGerente     Role = "GERENTE"     // Gerente
	RoleFuncionario Role = "FUNCIONARIO" // Funcionário regular
)

// IsValidRole verifica se o valor informado é um papel conhecido
func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleGerente, RoleFuncionario:
		return true
	}
	return false
}

// User representa um usuário do sistema
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já criptografada
func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if len(password) < 6 {
		return nil, ErrShortPassword
	}
	if role == "" {
		role = RoleFuncionario
	}
	if !IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsGerente verifica se o usuário é um gerente
func (u *User) IsGerente() bool {
	return u.Role == RoleGerente
}
