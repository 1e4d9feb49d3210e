// Package langs provides the built-in language grammars: per-language
// mappings from tree-sitter node kinds to the recognized construct
// kinds, plus a registry that picks the grammar for a file path.
package langs

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/focal-dev/focal/internal/focus"
)

// Registry maps file paths to the grammar that handles them.
type Registry struct {
	grammars []*focus.Grammar
	matchers map[string][]glob.Glob
}

// NewRegistry returns a registry with all built-in grammars registered.
func NewRegistry() *Registry {
	r := &Registry{matchers: make(map[string][]glob.Glob)}
	for _, g := range []*focus.Grammar{
		C(),
		Java(),
		PHP(),
		Python(),
		Ruby(),
		Rust(),
		TypeScript(),
		TSX(),
		JavaScript(),
	} {
		r.Register(g)
	}
	return r
}

// Register adds a grammar and compiles its file patterns. Patterns that
// fail to compile are skipped.
func (r *Registry) Register(g *focus.Grammar) {
	r.grammars = append(r.grammars, g)
	for _, pattern := range g.Patterns {
		if m, err := glob.Compile(pattern); err == nil {
			r.matchers[g.Name] = append(r.matchers[g.Name], m)
		}
	}
}

// Match returns the grammar handling path, going by file name pattern.
func (r *Registry) Match(path string) (*focus.Grammar, bool) {
	base := strings.ToLower(filepath.Base(path))
	for _, g := range r.grammars {
		for _, m := range r.matchers[g.Name] {
			if m.Match(base) {
				return g, true
			}
		}
	}
	return nil, false
}

// Grammars returns the registered grammars in registration order.
func (r *Registry) Grammars() []*focus.Grammar {
	out := make([]*focus.Grammar, len(r.grammars))
	copy(out, r.grammars)
	return out
}
