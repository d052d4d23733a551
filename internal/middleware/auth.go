// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/agrovia-exports/go-backend/internal/core"
)

const (
	PrincipalKey contextKey = "principal"

	// DefaultCookieName is the fallback token cookie; the configured
	// name is passed through NewAuthGate.
	DefaultCookieName = "auth-token"
)

type TokenVerifier interface {
	Verify(token string) (*core.Principal, error)
}

// AuthGate extracts and verifies the request credential. Extraction
// order: Authorization bearer header first, the token cookie second;
// the first non-empty token wins.
type AuthGate struct {
	verifier   TokenVerifier
	cookieName string
}

func NewAuthGate(verifier TokenVerifier, cookieName string) *AuthGate {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &AuthGate{
		verifier:   verifier,
		cookieName: cookieName,
	}
}

// Authenticator rejects requests without a valid token. The denial
// reason distinguishes "no token provided" from "invalid or expired
// token"; both are 401 to the caller.
func (g *AuthGate) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := g.ExtractToken(r)

		if token == "" {
			core.JSONError(
				w,
				core.UnauthorizedError("no token provided"),
			)
			return
		}

		principal, err := g.verifier.Verify(token)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticator. A failed check
// short-circuits before any repository or filesystem call.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := GetPrincipal(r.Context())

		if principal == nil {
			core.JSONError(
				w,
				core.UnauthorizedError("authentication required"),
			)
			return
		}

		// Role failures report as 401 like every other credential
		// failure; the API has no authorization tiers to distinguish.
		if !principal.IsAdmin() {
			core.JSONError(
				w,
				core.UnauthorizedError("admin access required"),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (g *AuthGate) ExtractToken(r *http.Request) string {
	if token := bearerToken(r); token != "" {
		return token
	}

	cookie, err := r.Cookie(g.cookieName)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(cookie.Value)
}

func bearerToken(r *http.Request) string {
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

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetPrincipal(ctx context.Context) *core.Principal {
	if principal, ok := ctx.Value(PrincipalKey).(*core.Principal); ok {
		return principal
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetPrincipal(ctx) != nil
}

func IsAdmin(ctx context.Context) bool {
	principal := GetPrincipal(ctx)
	return principal != nil && principal.IsAdmin()
}
