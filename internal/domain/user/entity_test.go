package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("cria usuário ativo com senha criptografada", func(t *testing.T) {
		u, err := NewUser("Administrador", "admin@stockpro.com", "admin123", RoleAdmin)
		require.NoError(t, err)

		assert.True(t, u.Active)
		assert.NotEqual(t, "admin123", u.Password)
		assert.True(t, u.CheckPassword("admin123"))
		assert.False(t, u.CheckPassword("outra-senha"))
	})

	t.Run("assume FUNCIONARIO quando o papel não é informado", func(t *testing.T) {
		u, err := NewUser("João", "joao@stockpro.com", "senha123", "")
		require.NoError(t, err)

		assert.Equal(t, RoleFuncionario, u.Role)
	})

	t.Run("rejeita papel desconhecido", func(t *testing.T) {
		_, err := NewUser("João", "joao@stockpro.com", "senha123", Role("SUPERVISOR"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejeita senha curta", func(t *testing.T) {
		_, err := NewUser("João", "joao@stockpro.com", "123", RoleFuncionario)
		assert.ErrorIs(t, err, ErrShortPassword)
	})

	t.Run("rejeita nome e email vazios", func(t *testing.T) {
		_, err := NewUser("", "joao@stockpro.com", "senha123", RoleFuncionario)
		assert.ErrorIs(t, err, ErrEmptyName)

		_, err = NewUser("João", "", "senha123", RoleFuncionario)
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleGerente))
	assert.True(t, IsValidRole(RoleFuncionario))
	assert.False(t, IsValidRole(Role("SUPERVISOR")))
}

func TestRoleHelpers(t *testing.T) {
	admin, err := NewUser("Admin", "admin@stockpro.com", "admin123", RoleAdmin)
	require.NoError(t, err)
	gerente, err := NewUser("Gerente", "gerente@stockpro.com", "gerente123", RoleGerente)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsGerente())
	assert.True(t, gerente.IsGerente())
	assert.False(t, gerente.IsAdmin())
}
