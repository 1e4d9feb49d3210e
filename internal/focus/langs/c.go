package langs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"

	"github.com/focal-dev/focal/internal/focus"
)

// C returns the grammar for C source files. Names hide behind nested
// declarators in this grammar; the classifier's declarator unwrapping
// digs them out.
func C() *focus.Grammar {
	return &focus.Grammar{
		Name:     "c",
		Patterns: []string{"*.c", "*.h"},
		Language: sitter.NewLanguage(c.Language()),
		Rules: map[string]focus.Rule{
			"function_definition": {
				Kind:         focus.KindFunction,
				NameField:    "declarator",
				DetailFields: []string{"parameters"},
			},
			"struct_specifier": {
				Kind:    focus.KindType,
				Keyword: "struct",
			},
			"union_specifier": {
				Kind:    focus.KindType,
				Keyword: "union",
			},
			"enum_specifier": {
				Kind:    focus.KindType,
				Keyword: "enum",
			},
			"type_definition": {
				Kind:      focus.KindType,
				Keyword:   "typedef",
				NameField: "declarator",
			},
			"declaration": {
				Kind:         focus.KindVariable,
				NameField:    "declarator",
				DetailFields: []string{"type"},
			},
			"preproc_def": {
				Kind:    focus.KindConstant,
				Keyword: "#define",
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
				DetailFields: []string{"condition"},
			},
			"case_statement": {
				Kind:      focus.KindBranchArm,
				Keyword:   "case",
				Label:     "case",
				NameField: "value",
			},
		},
		IncludeKinds: []string{"preproc_include"},
	}
}
