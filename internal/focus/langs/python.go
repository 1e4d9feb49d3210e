package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// Python returns the grammar for Python source files.
func Python() *focus.Grammar {
	return &focus.Grammar{
		Name:     "python",
		Patterns: []string{"*.py", "*.pyi"},
		Language: sitter.NewLanguage(python.Language()),
		Rules: map[string]focus.Rule{
			"class_definition": {
				Kind:        focus.KindType,
				Keyword:     "class",
				SuperFields: []string{"superclasses"},
			},
			"function_definition": {
				Kind:         focus.KindFunction,
				Keyword:      "def",
				DetailFields: []string{"parameters", "return_type"},
			},
			"lambda": {
				Kind:         focus.KindClosure,
				Keyword:      "lambda",
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"assignment": {
				Kind:         focus.KindVariable,
				NameField:    "left",
				DetailFields: []string{"type"},
			},
			"call": {
				Kind:         focus.KindCall,
				Label:        "function call",
				DetailFields: []string{"function", "arguments"},
			},
			"match_statement": {
				Kind:         focus.KindBranch,
				Keyword:      "match",
				Label:        "switch",
				DetailFields: []string{"subject"},
			},
			"case_clause": {
				Kind:    focus.KindBranchArm,
				Keyword: "case",
				Label:   "case",
			},
		},
		ImportKinds: []string{"import_statement", "import_from_statement"},
	}
}
