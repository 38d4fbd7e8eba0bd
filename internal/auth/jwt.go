// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/proper-parts/server/internal/config"
	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
)

// Manager signs and verifies the HS256 bearer tokens issued at login.
// Tokens carry the caller's email; everything else about the caller (the
// role in particular) is resolved from the users collection per request.
type Manager struct {
	key    jwk.Key
	expire time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing secret: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &Manager{
		key:    key,
		expire: cfg.TokenExpire,
	}, nil
}

// CreateLoginToken issues a fresh token for email. Login re-issues on every
// call, so promotion to admin takes effect on the next login.
func (m *Manager) CreateLoginToken(email string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Subject(email).
		Claim("email", email).
		IssuedAt(now).
		Expiration(now.Add(m.expire)).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

func (m *Manager) VerifyToken(
	ctx context.Context,
	tokenString string,
) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var email string
	if err := token.Get("email", &email); err != nil || email == "" {
		subject, ok := token.Subject()
		if !ok || subject == "" {
			return nil, fmt.Errorf(
				"verify token: missing email claim: %w",
				core.ErrTokenInvalid,
			)
		}
		email = subject
	}

	return &middleware.TokenClaims{Email: email}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
