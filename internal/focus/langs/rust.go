package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// Rust returns the grammar for Rust source files.
func Rust() *focus.Grammar {
	visibility := []string{"visibility_modifier"}

	return &focus.Grammar{
		Name:     "rust",
		Patterns: []string{"*.rs"},
		Language: sitter.NewLanguage(rust.Language()),
		Rules: map[string]focus.Rule{
			"struct_item": {
				Kind:          focus.KindType,
				Keyword:       "struct",
				ModifierKinds: visibility,
			},
			"enum_item": {
				Kind:          focus.KindType,
				Keyword:       "enum",
				ModifierKinds: visibility,
			},
			"trait_item": {
				Kind:          focus.KindType,
				Keyword:       "trait",
				ModifierKinds: visibility,
			},
			"impl_item": {
				Kind:        focus.KindType,
				Keyword:     "impl",
				NameField:   "type",
				SuperFields: []string{"trait"},
			},
			"mod_item": {
				Kind:          focus.KindType,
				Keyword:       "mod",
				ModifierKinds: visibility,
			},
			"function_item": {
				Kind:          focus.KindFunction,
				Keyword:       "fn",
				DetailFields:  []string{"parameters", "return_type"},
				ModifierKinds: visibility,
			},
			"closure_expression": {
				Kind:         focus.KindClosure,
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"let_declaration": {
				Kind:         focus.KindVariable,
				Keyword:      "let",
				NameField:    "pattern",
				DetailFields: []string{"type"},
			},
			"const_item": {
				Kind:          focus.KindConstant,
				Keyword:       "const",
				DetailFields:  []string{"type"},
				ModifierKinds: visibility,
			},
			"static_item": {
				Kind:          focus.KindConstant,
				Keyword:       "static",
				DetailFields:  []string{"type"},
				ModifierKinds: visibility,
			},
			"call_expression": {
				Kind:         focus.KindCall,
				Label:        "function call",
				DetailFields: []string{"function", "arguments"},
			},
			"match_expression": {
				Kind:         focus.KindBranch,
				Keyword:      "match",
				Label:        "switch",
				DetailFields: []string{"value"},
			},
			"match_arm": {
				Kind:      focus.KindBranchArm,
				Label:     "case",
				NameField: "pattern",
			},
		},
		ImportKinds: []string{"use_declaration"},
	}
}
