// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/proper-parts/server/internal/core"
)

type contextKey string

const (
	UserEmailKey contextKey = "user_email"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenClaims is the decoded bearer token payload. The role is deliberately
// absent: it is resolved from the users collection at check time, so a role
// change applies without waiting for the token to be reissued.
type TokenClaims struct {
	Email string
}

// RoleResolver looks up the stored role for an authenticated email.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Access is the capability a route declares. The guard enforces it before
// the handler runs; handlers never re-check authentication.
type Access int

const (
	AccessPublic Access = iota
	AccessUser
	AccessAdmin
)

const roleAdmin = "admin"

// Guard turns a declared Access level into middleware.
type Guard struct {
	verifier TokenVerifier
	roles    RoleResolver
}

func NewGuard(verifier TokenVerifier, roles RoleResolver) *Guard {
	return &Guard{
		verifier: verifier,
		roles:    roles,
	}
}

func (g *Guard) Require(level Access) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if level == AccessPublic {
				next.ServeHTTP(w, r)
				return
			}

			token := ExtractToken(r)
			if token == "" {
				core.Unauthorized(w, "missing authorization token")
				return
			}

			claims, err := g.verifier.VerifyToken(r.Context(), token)
			if err != nil {
				// Invalid and expired tokens are both rejected as
				// forbidden; only a missing token is 401.
				core.Forbidden(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserEmailKey, claims.Email)

			if level == AccessAdmin {
				role, roleErr := g.roles.RoleByEmail(ctx, claims.Email)
				if roleErr != nil {
					if errors.Is(roleErr, core.ErrNotFound) {
						core.Forbidden(w, "insufficient permissions")
						return
					}
					core.InternalServerError(w, roleErr)
					return
				}
				if role != roleAdmin {
					core.Forbidden(w, "insufficient permissions")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}
