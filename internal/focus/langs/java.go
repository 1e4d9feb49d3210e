package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// Java returns the grammar for Java source files.
func Java() *focus.Grammar {
	modifiers := []string{"modifiers"}

	return &focus.Grammar{
		Name:     "java",
		Patterns: []string{"*.java"},
		Language: sitter.NewLanguage(java.Language()),
		Rules: map[string]focus.Rule{
			"class_declaration": {
				Kind:          focus.KindType,
				Keyword:       "class",
				SuperFields:   []string{"superclass", "interfaces"},
				ModifierKinds: modifiers,
			},
			"interface_declaration": {
				Kind:          focus.KindType,
				Keyword:       "interface",
				SuperKinds:    []string{"extends_interfaces"},
				ModifierKinds: modifiers,
			},
			"enum_declaration": {
				Kind:          focus.KindType,
				Keyword:       "enum",
				SuperFields:   []string{"interfaces"},
				ModifierKinds: modifiers,
			},
			"record_declaration": {
				Kind:          focus.KindType,
				Keyword:       "record",
				DetailFields:  []string{"parameters"},
				SuperFields:   []string{"interfaces"},
				ModifierKinds: modifiers,
			},
			"method_declaration": {
				Kind:          focus.KindMethod,
				DetailFields:  []string{"parameters"},
				ModifierKinds: modifiers,
			},
			"constructor_declaration": {
				Kind:          focus.KindInit,
				Label:         "init",
				DetailFields:  []string{"parameters"},
				ModifierKinds: modifiers,
			},
			"field_declaration": {
				Kind:          focus.KindVariable,
				NameField:     "declarator",
				DetailFields:  []string{"type"},
				ModifierKinds: modifiers,
			},
			"local_variable_declaration": {
				Kind:         focus.KindVariable,
				NameField:    "declarator",
				DetailFields: []string{"type"},
			},
			"lambda_expression": {
				Kind:         focus.KindClosure,
				Label:        "closure",
				DetailFields: []string{"parameters"},
			},
			"method_invocation": {
				Kind:         focus.KindCall,
				Label:        "function call",
				DetailFields: []string{"arguments"},
			},
			"switch_expression": {
				Kind:         focus.KindBranch,
				Keyword:      "switch",
				Label:        "switch",
				DetailFields: []string{"condition"},
			},
		},
		ImportKinds: []string{"import_declaration"},
	}
}
