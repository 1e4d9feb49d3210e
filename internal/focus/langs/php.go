package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// PHP returns the grammar for PHP source files.
func PHP() *focus.Grammar {
	memberModifiers := []string{
		"visibility_modifier",
		"static_modifier",
		"abstract_modifier",
		"final_modifier",
		"readonly_modifier",
	}

	return &focus.Grammar{
		Name:     "php",
		Patterns: []string{"*.php"},
		Language: sitter.NewLanguage(php.LanguagePHP()),
		Rules: map[string]focus.Rule{
			"class_declaration": {
				Kind:          focus.KindType,
				Keyword:       "class",
				SuperKinds:    []string{"base_clause", "class_interface_clause"},
				ModifierKinds: []string{"abstract_modifier", "final_modifier", "readonly_modifier"},
			},
			"interface_declaration": {
				Kind:       focus.KindType,
				Keyword:    "interface",
				SuperKinds: []string{"base_clause"},
			},
			"trait_declaration": {
				Kind:    focus.KindType,
				Keyword: "trait",
			},
			"enum_declaration": {
				Kind:    focus.KindType,
				Keyword: "enum",
			},
			"function_definition": {
				Kind:         focus.KindFunction,
				Keyword:      "function",
				DetailFields: []string{"parameters", "return_type"},
			},
			"method_declaration": {
				Kind:          focus.KindMethod,
				Keyword:       "function",
				DetailFields:  []string{"parameters", "return_type"},
				ModifierKinds: memberModifiers,
			},
			"anonymous_function": {
				Kind:         focus.KindClosure,
				Keyword:      "function",
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"anonymous_function_creation_expression": {
				Kind:         focus.KindClosure,
				Keyword:      "function",
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"arrow_function": {
				Kind:         focus.KindClosure,
				Keyword:      "fn",
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"assignment_expression": {
				Kind:      focus.KindVariable,
				NameField: "left",
			},
			"const_declaration": {
				Kind:          focus.KindConstant,
				Keyword:       "const",
				ModifierKinds: memberModifiers,
			},
			"property_declaration": {
				Kind:          focus.KindVariable,
				DetailFields:  []string{"type"},
				ModifierKinds: memberModifiers,
			},
			"function_call_expression": {
				Kind:         focus.KindCall,
				Label:        "function call",
				DetailFields: []string{"function", "arguments"},
			},
			"member_call_expression": {
				Kind:         focus.KindCall,
				Label:        "function call",
				DetailFields: []string{"arguments"},
			},
			"switch_statement": {
				Kind:         focus.KindBranch,
				Keyword:      "switch",
				Label:        "switch",
				DetailFields: []string{"condition"},
			},
			"case_statement": {
				Kind:      focus.KindBranchArm,
				Keyword:   "case",
				Label:     "case",
				NameField: "value",
			},
		},
		ImportKinds: []string{"namespace_use_declaration"},
	}
}
