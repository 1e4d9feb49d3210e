package focus

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Grammar describes how one tree-sitter language maps onto the
// recognized construct kinds. Grammars are immutable after construction
// and safe to share across concurrent extractions.
type Grammar struct {
	// Name is the language name, e.g. "python".
	Name string

	// Patterns are file name globs handled by this grammar, e.g. "*.py".
	Patterns []string

	// Language is the compiled tree-sitter language.
	Language *sitter.Language

	// Rules maps tree-sitter node kinds to classification rules. Node
	// kinds absent from the map are traversed through but never appear
	// in the scope hierarchy.
	Rules map[string]Rule

	// ImportKinds are node kinds of import statements at file scope.
	ImportKinds []string

	// IncludeKinds are node kinds of include directives at file scope
	// (C-style #include).
	IncludeKinds []string
}

// Rule tells the classifier how to summarize one node kind.
type Rule struct {
	// Kind is the recognized construct kind this node kind maps to.
	Kind Kind

	// Keyword is the leading keyword of the signature ("class", "def").
	Keyword string

	// Label is the display name used when the node has no resolvable
	// identifier ("closure", "function call", "switch").
	Label string

	// NameField is the tree-sitter field holding the construct's name.
	// Empty means the conventional "name" field. The special value
	// "declarator" unwraps nested declarators (C-style) down to the
	// innermost identifier.
	NameField string

	// DetailFields are fields whose text becomes the trailing detail of
	// the signature (parameter list, declared type).
	DetailFields []string

	// SuperFields are fields whose text becomes the supertype suffix.
	SuperFields []string

	// SuperKinds are child node kinds (as opposed to fields) carrying
	// the supertype list, for grammars that model heritage as plain
	// children.
	SuperKinds []string

	// ModifierKinds are child node kinds rendered as a modifiers prefix.
	ModifierKinds []string
}

// Parse parses source text with a fresh parser, so concurrent
// extractions never share parser state. The returned tree is owned by
// the caller and must be closed.
func (g *Grammar) Parse(source []byte) (*sitter.Tree, error) {
	if g.Language == nil {
		return nil, fmt.Errorf("parse %s source: grammar has no language", g.Name)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(g.Language); err != nil {
		return nil, fmt.Errorf("parse %s source: %w", g.Name, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s source: tree-sitter returned no tree", g.Name)
	}
	return tree, nil
}
