package httpserver

import (
	"net/http"
	"strings"
)

const (
	defaultEnvironment    = "Development"
	productionEnvironment = "Production"
)

// environmentHeaders labels every response with the deployment environment.
// Non-production deployments are also kept out of search indexes.
func environmentHeaders(value string) func(http.Handler) http.Handler {
	label := strings.TrimSpace(value)
	if label == "" {
		label = defaultEnvironment
	}
	indexable := label == productionEnvironment
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Environment", label)
			if !indexable {
				w.Header().Set("X-Robots-Tag", "noindex, nofollow")
			}
			next.ServeHTTP(w, r)
		})
	}
}
