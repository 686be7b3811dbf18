// Package filter narrows a catalog by scope and free-text query. Filtering
// is a pure read: the input catalog is never mutated and the relative order
// of surviving entries is preserved.
package filter

import (
	"fmt"
	"strings"

	"github.com/klauern/lazyopencode/internal/model"
)

// Level selects which scopes survive filtering.
type Level int

const (
	// LevelNone keeps both scopes.
	LevelNone Level = iota
	// LevelGlobal keeps only global customizations.
	LevelGlobal
	// LevelProject keeps only project customizations.
	LevelProject
)

// String returns a human-readable label for the level.
func (l Level) String() string {
	switch l {
	case LevelGlobal:
		return "Global"
	case LevelProject:
		return "Project"
	default:
		return "All"
	}
}

// Next cycles to the following level: All → Global → Project → All.
func (l Level) Next() Level {
	switch l {
	case LevelNone:
		return LevelGlobal
	case LevelGlobal:
		return LevelProject
	default:
		return LevelNone
	}
}

// Matches reports whether a scope survives this level.
func (l Level) Matches(s model.Scope) bool {
	switch l {
	case LevelGlobal:
		return s == model.ScopeGlobal
	case LevelProject:
		return s == model.ScopeProject
	default:
		return true
	}
}

// ParseLevel converts a string to a Level. An empty string means no scope
// filtering.
func ParseLevel(s string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "", "all", "none":
		return LevelNone, nil
	default:
		scope, err := model.ParseScope(normalized)
		if err != nil {
			return LevelNone, fmt.Errorf("unknown level %q (valid: all, global, project)", s)
		}
		if scope == model.ScopeGlobal {
			return LevelGlobal, nil
		}
		return LevelProject, nil
	}
}

// Apply returns the catalog entries that survive both the level filter and
// the query, in catalog order. The query is a case-insensitive substring
// match against name or description; a blank query keeps everything.
func Apply(catalog model.Catalog, level Level, query string) []model.Customization {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Customization, 0, len(catalog.Customizations))
	for _, c := range catalog.Customizations {
		if !level.Matches(c.Scope) {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c model.Customization, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Description), query)
}
