package pageshell

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// RouteTable is an ordered, immutable list of routes. Declaration order is priority order:
// the first entry that matches a path is selected.
type RouteTable struct {
	entries []RouteEntry
	byName  map[string]int
}

// NewRouteTable validates entries and builds a table that keeps their order.
func NewRouteTable(entries ...RouteEntry) (*RouteTable, error) {
	t := &RouteTable{
		entries: slices.Clone(entries),
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range t.entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if j, ok := t.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s declared at %d and %d", ErrDuplicateRoute, e.Name, j, i)
		}
		t.byName[e.Name] = i
	}
	return t, nil
}

// MustRouteTable is like NewRouteTable but panics on error.
func MustRouteTable(entries ...RouteEntry) *RouteTable {
	t, err := NewRouteTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Select returns the first entry matching path. The path is compared literally.
func (t *RouteTable) Select(path string) (RouteEntry, bool) {
	for _, e := range t.entries {
		if e.Matches(path) {
			return e, true
		}
	}
	return RouteEntry{}, false
}

// Lookup finds an entry by name.
func (t *RouteTable) Lookup(name string) (RouteEntry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return RouteEntry{}, false
	}
	return t.entries[i], true
}

// Entries returns a copy of the entries in priority order.
func (t *RouteTable) Entries() []RouteEntry {
	return slices.Clone(t.entries)
}

// All iterates over the entries in priority order.
func (t *RouteTable) All() iter.Seq[RouteEntry] {
	return slices.Values(t.entries)
}

func (t *RouteTable) Len() int {
	return len(t.entries)
}

// Shadow describes an entry that can never be selected because an earlier entry
// matches every path it matches.
type Shadow struct {
	Entry RouteEntry
	By    RouteEntry
}

func (s Shadow) String() string {
	return fmt.Sprintf("%s %s is shadowed by %s %s", s.Entry.Name, s.Entry.Pattern, s.By.Name, s.By.Pattern)
}

// Shadowed lists unreachable entries. A table is still valid when it has some; a Prefix "/"
// declared before other routes is the usual cause.
func (t *RouteTable) Shadowed() []Shadow {
	var out []Shadow
	for j, e := range t.entries {
		for _, earlier := range t.entries[:j] {
			if covers(earlier, e) {
				out = append(out, Shadow{Entry: e, By: earlier})
				break
			}
		}
	}
	return out
}

// covers reports whether every path matched by b is also matched by a.
func covers(a, b RouteEntry) bool {
	switch a.Mode {
	case Exact:
		return b.Mode == Exact && a.Pattern == b.Pattern
	case Prefix:
		return strings.HasPrefix(b.Pattern, a.Pattern)
	}
	return false
}
