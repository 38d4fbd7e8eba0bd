// AngelaMos | 2026
// jwt_test.go

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proper-parts/server/internal/auth"
	"github.com/proper-parts/server/internal/config"
	"github.com/proper-parts/server/internal/core"
)

const testSecret = "test-secret-key-at-least-32-bytes-long"

func newManager(t *testing.T, expire time.Duration) *auth.Manager {
	t.Helper()

	m, err := auth.NewManager(config.JWTConfig{
		Secret:      testSecret,
		TokenExpire: expire,
	})
	require.NoError(t, err)

	return m
}

func TestCreateAndVerifyToken(t *testing.T) {
	m := newManager(t, time.Hour)

	token, err := m.CreateLoginToken("buyer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
}

func TestVerifyToken_Expired(t *testing.T) {
	m := newManager(t, -time.Minute)

	token, err := m.CreateLoginToken("buyer@example.com")
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := newManager(t, time.Hour)

	token, err := issuer.CreateLoginToken("buyer@example.com")
	require.NoError(t, err)

	verifier, err := auth.NewManager(config.JWTConfig{
		Secret:      "a-completely-different-signing-secret",
		TokenExpire: time.Hour,
	})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyToken_Garbage(t *testing.T) {
	m := newManager(t, time.Hour)

	_, err := m.VerifyToken(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}
