package server

import (
	"net/http"
)

// originValidationMiddleware rejects requests whose Origin header is not allowed.
// Requests without Origin pass; "*" allows any origin.
func originValidationMiddleware(allowed []string) Middleware {
	return func(next http.Handler) http.Handler {
		allowedMap := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			allowedMap[v] = true
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || allowedMap["*"] || allowedMap[origin] {
				next.ServeHTTP(w, r)
				return
			}
			writeJSON(w, http.StatusForbidden, errorBody("origin not allowed"))
		})
	}
}
