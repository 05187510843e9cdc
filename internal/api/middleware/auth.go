package middleware

import (
	"context"
	"net/http"
	"strings"
)

type AuthMiddleware struct{}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// Authenticate checks operator credentials on the fleet API. Token validation
// is delegated to the fleet's auth service; here the token only has to be
// present and well-formed.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(auth, " ")
		if len(parts) != 2 || (parts[0] != "Basic" && parts[0] != "Bearer") {
			http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "operator_id", parts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
