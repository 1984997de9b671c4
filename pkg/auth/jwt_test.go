package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpro/stockpro-api/internal/domain/user"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Gerente Silva", "gerente@stockpro.com", "gerente123", user.RoleGerente)
	require.NoError(t, err)
	return u
}

func TestNewJWTService(t *testing.T) {
	t.Run("falha sem chave secreta", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")

		_, err := NewJWTService()
		assert.ErrorIs(t, err, ErrMissingJWTKey)
	})

	t.Run("usa a expiração configurada", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
		t.Setenv("JWT_EXPIRATION_HOURS", "2")

		svc, err := NewJWTService()
		require.NoError(t, err)
		assert.Equal(t, "2h0m0s", svc.Expiration().String())
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	u := newTestUser(t)
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.Name, claims.Name)
	assert.Equal(t, string(user.RoleGerente), claims.Role)
}

func TestValidateToken_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	_, err = svc.ValidateToken("não-é-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-a")
	svcA, err := NewJWTService()
	require.NoError(t, err)

	token, err := svcA.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "segredo-b")
	svcB, err := NewJWTService()
	require.NoError(t, err)

	_, err = svcB.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
