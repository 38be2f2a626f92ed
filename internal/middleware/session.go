package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/passgen/passgen-go/internal/crypto"
)

type contextKey string

const sessionClaimsKey contextKey = "sessionClaims"

// SessionAuth returns middleware that validates a Bearer session token from the
// Authorization header.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired session token")
				return
			}

			ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext extracts the validated session claims from the request context.
func SessionFromContext(ctx context.Context) (*crypto.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionClaimsKey).(*crypto.SessionClaims)
	return claims, ok && claims != nil
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
