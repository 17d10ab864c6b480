package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTManagerFromEnv()
	require.Error(t, err)
}

func TestJWTManagerSignAndParse(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	m, err := NewJWTManagerFromEnv()
	require.NoError(t, err)

	token, err := m.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	a, err := NewJWTManagerFromEnv()
	require.NoError(t, err)

	token, err := a.Sign("user-123")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	b, err := NewJWTManagerFromEnv()
	require.NoError(t, err)

	_, err = b.Parse(token)
	assert.Error(t, err)
}

func TestJWTManagerRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	m, err := NewJWTManagerFromEnv()
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.Error(t, err)
}
