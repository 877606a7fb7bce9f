package pageshell

import (
	"net/http"
)

// Router is an interface for registering HTTP routes.
// Patterns follow [http.ServeMux] conventions: a pattern ending in "/" matches the whole subtree.
type Router interface {
	HandleMethod(method, pattern string, handler http.Handler)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// Example:
//
//	mux := http.NewServeMux()
//	shell.Mount(pageshell.NewRouter(mux))
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != MethodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// MethodAll registers a handler for every method.
const MethodAll = "ALL"
