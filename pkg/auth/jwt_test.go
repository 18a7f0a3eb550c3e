package auth

import (
	"testing"

	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Maria Silva", "maria@exemplo.com.br", "senha-secreta", user.RoleVendedor)
	require.NoError(t, err)
	return u
}

func TestNewJWTServiceSemChave(t *testing.T) {
	_, err := NewJWTService("", 24)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateEValidateToken(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", 24)
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
	assert.Equal(t, string(user.RoleVendedor), claims.Role)
	assert.Equal(t, u.ID, claims.Subject)
}

func TestValidateTokenChaveErrada(t *testing.T) {
	svc, err := NewJWTService("chave-correta", 24)
	require.NoError(t, err)

	token, err := svc.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	other, err := NewJWTService("chave-errada", 24)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenLixo(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", 24)
	require.NoError(t, err)

	_, err = svc.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", 24)
	require.NoError(t, err)

	u := newTestUser(t)
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	renewed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(renewed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", 24)
	require.NoError(t, err)

	_, err = svc.RefreshToken("nao-e-um-token")
	assert.Error(t, err)
}
