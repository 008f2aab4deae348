package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/security"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// AuthMiddleware validates bearer tokens and attaches the claims to the
// request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, security.ErrInvalidToken)
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, security.ErrWrongTokenType)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireVendor rejects requests whose token does not carry the vendor role.
func RequireVendor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != string(domain.UserRoleVendor) {
			respondError(w, service.ErrUnauthorized)
			return
		}
		next(w, r)
	}
}

// ClaimsFromContext returns the authenticated claims, or nil.
func ClaimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims
}

func userIDFromContext(ctx context.Context) int64 {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
