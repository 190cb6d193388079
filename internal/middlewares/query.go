package middlewares

import "net/http"

// RejectQueryMiddleware hands requests carrying a query string (even an
// empty "?") to fallback, so a route matches only its bare path.
func RejectQueryMiddleware(fallback http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" || r.URL.ForceQuery {
				fallback.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
