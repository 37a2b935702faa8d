package routes

import (
	"net/http"
	"strings"
)

// NewHandler оборачивает роутер так, что завершающий "/" в пути игнорируется
func NewHandler(router http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			req.URL.Path = strings.TrimRight(p, "/")
			if req.URL.Path == "" {
				req.URL.Path = "/"
			}
			req.URL.RawPath = ""
		}
		router.ServeHTTP(w, req)
	})
}
