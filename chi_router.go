package pageshell

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts a chi router. Subtree patterns ("/docs/") become chi wildcards ("/docs/*").
func NewChiRouter(r chi.Router) Router {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if strings.HasSuffix(pattern, "/") {
		pattern += "*"
	}
	if method == MethodAll || method == "" {
		r.router.Handle(pattern, handler)
		return
	}
	r.router.Method(method, pattern, handler)
}
