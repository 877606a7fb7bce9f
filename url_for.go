package pageshell

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackielii/ctxkey"
)

type renderState struct {
	table   *RouteTable
	path    string
	entry   RouteEntry
	matched bool
}

var stateCtx = ctxkey.New[*renderState]("pageshell.renderState", nil)

func withRenderState(ctx context.Context, t *RouteTable, path string) context.Context {
	st := &renderState{table: t, path: path}
	st.entry, st.matched = t.Select(path)
	return stateCtx.WithValue(ctx, st)
}

// URLFor returns the pattern of the named route from the table being rendered.
// Exact and Prefix patterns are both valid links to their page.
func URLFor(ctx context.Context, name string) (string, error) {
	st := stateCtx.Value(ctx)
	if st == nil {
		return "", errors.New("urlfor: route table not found in context")
	}
	e, ok := st.table.Lookup(name)
	if !ok {
		return "", fmt.Errorf("urlfor: no route named %q", name)
	}
	return e.Pattern, nil
}

// CurrentRoute returns the entry selected for the path being rendered.
// ok is false outside a render or when no route matched.
func CurrentRoute(ctx context.Context) (RouteEntry, bool) {
	st := stateCtx.Value(ctx)
	if st == nil {
		return RouteEntry{}, false
	}
	return st.entry, st.matched
}

// CurrentPath returns the path being rendered, or "" outside a render.
func CurrentPath(ctx context.Context) string {
	if st := stateCtx.Value(ctx); st != nil {
		return st.path
	}
	return ""
}

// RoutesFrom returns the table being rendered, nil outside a render.
func RoutesFrom(ctx context.Context) *RouteTable {
	if st := stateCtx.Value(ctx); st != nil {
		return st.table
	}
	return nil
}
