package pageshell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// MatchMode decides how a route pattern is compared with the current path.
type MatchMode int

const (
	// Exact selects a route only when the path equals its pattern.
	Exact MatchMode = iota
	// Prefix selects a route when the path starts with its pattern.
	// A Prefix "/" matches every path.
	Prefix
)

func (m MatchMode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode parses "exact" or "prefix", ignoring case.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "prefix":
		return Prefix, nil
	}
	return 0, fmt.Errorf("unknown match mode %q", s)
}

// PageFunc instantiates a page. input is the route's static input, nil when the route has none.
type PageFunc func(input any) templ.Component

var (
	ErrInvalidRoute   = errors.New("invalid route")
	ErrDuplicateRoute = errors.New("duplicate route name")
)

// RouteEntry associates a path pattern with the page rendered for paths matching it.
type RouteEntry struct {
	Pattern string
	Mode    MatchMode
	Name    string
	Title   string
	Page    PageFunc
	// Input is handed to Page on every render, independent of the path.
	// A nil Input means the route has none unless it was set with WithInput.
	Input any

	hasInput bool
}

// RouteOption configures a RouteEntry built by Route.
type RouteOption func(*RouteEntry)

// WithInput attaches a static input passed to the page at render time.
func WithInput(v any) RouteOption {
	return func(e *RouteEntry) {
		e.Input = v
		e.hasInput = true
	}
}

// WithTitle sets the document title used when the route is selected.
func WithTitle(title string) RouteOption {
	return func(e *RouteEntry) {
		e.Title = title
	}
}

// Route declares a route entry.
//
//	pageshell.Route("/contact", pageshell.Prefix, "contact", contactPage, pageshell.WithInput("Joel"))
func Route(pattern string, mode MatchMode, name string, page PageFunc, opts ...RouteOption) RouteEntry {
	e := RouteEntry{Pattern: pattern, Mode: mode, Name: name, Page: page}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// HasInput reports whether the route carries a static input.
func (e RouteEntry) HasInput() bool {
	return e.hasInput || e.Input != nil
}

// Matches reports whether path selects this entry, ignoring any earlier entries.
func (e RouteEntry) Matches(path string) bool {
	switch e.Mode {
	case Exact:
		return path == e.Pattern
	case Prefix:
		return strings.HasPrefix(path, e.Pattern)
	}
	return false
}

// Component instantiates the page with its static input, nil when there is none.
func (e RouteEntry) Component() templ.Component {
	return e.Page(e.Input)
}

func (e RouteEntry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: route %q has no name", ErrInvalidRoute, e.Pattern)
	}
	if !strings.HasPrefix(e.Pattern, "/") {
		return fmt.Errorf("%w: pattern %q of %s must start with /", ErrInvalidRoute, e.Pattern, e.Name)
	}
	if e.Mode != Exact && e.Mode != Prefix {
		return fmt.Errorf("%w: %s has %s", ErrInvalidRoute, e.Name, e.Mode)
	}
	if e.Page == nil {
		return fmt.Errorf("%w: %s has no page", ErrInvalidRoute, e.Name)
	}
	return nil
}

func (e RouteEntry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Mode.String())
	sb.WriteString(" ")
	sb.WriteString(e.Pattern)
	sb.WriteString(" -> ")
	sb.WriteString(e.Name)
	if e.Title != "" {
		sb.WriteString(" (" + e.Title + ")")
	}
	if e.HasInput() {
		fmt.Fprintf(&sb, " input=%v", e.Input)
	}
	return sb.String()
}
