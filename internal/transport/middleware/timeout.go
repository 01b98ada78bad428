package middleware

import (
	"net/http"
	"time"

	"github.com/frahmantamala/company-directory/internal"
)

// QueryTimeout bounds the request context, and so every query issued with
// it, to d.
func QueryTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := internal.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
