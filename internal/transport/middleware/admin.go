package middleware

import (
	"net/http"

	"github.com/heartmarshall/regional-site-backend/pkg/ctxutil"
)

// RequireAuth rejects anonymous requests before the handler reads the body.
// Must be mounted after Auth.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
