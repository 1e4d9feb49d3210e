package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// Ruby returns the grammar for Ruby source files. Ruby has no dedicated
// import statement node (require is an ordinary method call), so no
// import kinds are declared.
func Ruby() *focus.Grammar {
	return &focus.Grammar{
		Name:     "ruby",
		Patterns: []string{"*.rb", "*.rake", "*.gemspec"},
		Language: sitter.NewLanguage(ruby.Language()),
		Rules: map[string]focus.Rule{
			"class": {
				Kind:        focus.KindType,
				Keyword:     "class",
				SuperFields: []string{"superclass"},
			},
			"module": {
				Kind:    focus.KindType,
				Keyword: "module",
			},
			"method": {
				Kind:         focus.KindMethod,
				Keyword:      "def",
				DetailFields: []string{"parameters"},
			},
			"singleton_method": {
				Kind:         focus.KindMethod,
				Keyword:      "def",
				DetailFields: []string{"parameters"},
			},
			"assignment": {
				Kind:      focus.KindVariable,
				NameField: "left",
			},
			"call": {
				Kind:         focus.KindCall,
				Label:        "function call",
				NameField:    "method",
				DetailFields: []string{"arguments"},
			},
			"case": {
				Kind:         focus.KindBranch,
				Keyword:      "case",
				Label:        "switch",
				DetailFields: []string{"value"},
			},
			"when": {
				Kind:    focus.KindBranchArm,
				Keyword: "when",
				Label:   "case",
			},
			"block": {
				Kind:         focus.KindClosure,
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"do_block": {
				Kind:         focus.KindClosure,
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"lambda": {
				Kind:         focus.KindClosure,
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
		},
	}
}
