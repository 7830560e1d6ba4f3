package middleware

import (
	"net/http"

	"github.com/danie1204clmm-ctrl/diegao/internal/auth"
)

// RequireOperator guards mutating endpoints: a request without a valid
// operator session token is rejected. Read endpoints stay open, the
// till is bound to localhost anyway.
func RequireOperator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				http.Error(w, "operator session required", http.StatusUnauthorized)
				return
			}

			if err := auth.ParseToken(secret, tokenStr); err != nil {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
