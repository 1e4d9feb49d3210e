package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// TypeScript returns the grammar for TypeScript source files.
func TypeScript() *focus.Grammar {
	return &focus.Grammar{
		Name:        "typescript",
		Patterns:    []string{"*.ts", "*.mts", "*.cts"},
		Language:    sitter.NewLanguage(typescript.LanguageTypescript()),
		Rules:       typescriptRules(),
		ImportKinds: []string{"import_statement"},
	}
}

// TSX returns the grammar for TSX/JSX source files.
func TSX() *focus.Grammar {
	return &focus.Grammar{
		Name:        "tsx",
		Patterns:    []string{"*.tsx", "*.jsx"},
		Language:    sitter.NewLanguage(typescript.LanguageTSX()),
		Rules:       typescriptRules(),
		ImportKinds: []string{"import_statement"},
	}
}

// JavaScript returns the grammar for JavaScript source files. The
// TypeScript grammar parses plain JavaScript as a subset.
func JavaScript() *focus.Grammar {
	return &focus.Grammar{
		Name:        "javascript",
		Patterns:    []string{"*.js", "*.mjs", "*.cjs"},
		Language:    sitter.NewLanguage(typescript.LanguageTypescript()),
		Rules:       typescriptRules(),
		ImportKinds: []string{"import_statement"},
	}
}

func typescriptRules() map[string]focus.Rule {
	classModifiers := []string{"decorator", "abstract"}
	memberModifiers := []string{"accessibility_modifier", "static", "async", "readonly", "abstract", "get", "set"}

	return map[string]focus.Rule{
		"class_declaration": {
			Kind:          focus.KindType,
			Keyword:       "class",
			SuperKinds:    []string{"class_heritage"},
			ModifierKinds: classModifiers,
		},
		"abstract_class_declaration": {
			Kind:          focus.KindType,
			Keyword:       "abstract class",
			SuperKinds:    []string{"class_heritage"},
			ModifierKinds: classModifiers,
		},
		"interface_declaration": {
			Kind:       focus.KindType,
			Keyword:    "interface",
			SuperKinds: []string{"extends_clause", "extends_type_clause"},
		},
		"enum_declaration": {
			Kind:    focus.KindType,
			Keyword: "enum",
		},
		"type_alias_declaration": {
			Kind:    focus.KindType,
			Keyword: "type",
		},
		"function_declaration": {
			Kind:         focus.KindFunction,
			Keyword:      "function",
			DetailFields: []string{"parameters", "return_type"},
			ModifierKinds: []string{
				"async",
			},
		},
		"method_definition": {
			Kind:          focus.KindMethod,
			DetailFields:  []string{"parameters", "return_type"},
			ModifierKinds: memberModifiers,
		},
		"arrow_function": {
			Kind:         focus.KindClosure,
			Label:        "closure",
			DetailFields: []string{"parameters", "parameter"},
		},
		"function_expression": {
			Kind:         focus.KindClosure,
			Keyword:      "function",
			Label:        "closure",
			DetailFields: []string{"parameters"},
		},
		"variable_declarator": {
			Kind:         focus.KindVariable,
			DetailFields: []string{"type"},
		},
		"public_field_definition": {
			Kind:          focus.KindVariable,
			DetailFields:  []string{"type"},
			ModifierKinds: memberModifiers,
		},
		"call_expression": {
			Kind:         focus.KindCall,
			Label:        "function call",
			DetailFields: []string{"function", "arguments"},
		},
		"switch_statement": {
			Kind:         focus.KindBranch,
			Keyword:      "switch",
			Label:        "switch",
			DetailFields: []string{"value"},
		},
		"switch_case": {
			Kind:      focus.KindBranchArm,
			Keyword:   "case",
			Label:     "case",
			NameField: "value",
		},
		"switch_default": {
			Kind:    focus.KindBranchArm,
			Keyword: "default",
			Label:   "default",
		},
	}
}
