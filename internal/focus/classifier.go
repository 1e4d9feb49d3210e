package focus

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Classify maps a single tree node to its ContextNode summary. It is a
// pure function of the node, the grammar, and the document text:
// identical input always yields an identical result. Unrecognized node
// kinds report ok=false.
func Classify(node *sitter.Node, g *Grammar, doc *Document) (ContextNode, bool) {
	rule, ok := g.Rules[node.Kind()]
	if !ok || !rule.Kind.Indexable() {
		return ContextNode{}, false
	}

	name := nameText(node, rule, doc)
	sig := signatureParts{
		modifiers:  modifiersText(node, rule, doc),
		keyword:    rule.Keyword,
		name:       name,
		detail:     detailText(node, rule, doc),
		supertypes: supertypesText(node, rule, doc),
	}

	display := name
	if display == "" {
		display = rule.Label
	}
	if display == "" {
		display = rule.Kind.String()
	}

	return ContextNode{
		Node:                 node,
		Kind:                 rule.Kind,
		Range:                NodeRange(node),
		Signature:            sig.render(),
		Name:                 display,
		CanBeUsedAsCodeRange: rule.Kind.safeCodeRange(),
	}, true
}

// nameText resolves the construct's identifier text, or "" when the
// construct is anonymous.
func nameText(node *sitter.Node, rule Rule, doc *Document) string {
	field := rule.NameField
	if field == "" {
		field = "name"
	}

	var n *sitter.Node
	if field == "declarator" {
		if inner := unwrapDeclarator(node); inner != node {
			n = inner
		}
	} else {
		n = fieldInChain(node, field)
	}

	// Some grammars nest the identifier one level deeper (e.g. a
	// variable_declarator inside a field declaration).
	for n != nil {
		if inner := n.ChildByFieldName("name"); inner != nil {
			n = inner
			continue
		}
		break
	}
	return collapseWhitespace(doc.TextOf(n))
}

// detailText joins the texts of the rule's detail fields. Parts that
// open a parameter list attach without a separating space.
func detailText(node *sitter.Node, rule Rule, doc *Document) string {
	var b strings.Builder
	for _, field := range rule.DetailFields {
		text := collapseWhitespace(doc.TextOf(fieldInChain(node, field)))
		if text == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasPrefix(text, "(") {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}

// supertypesText collects the supertype/conformance list from the
// rule's fields and child kinds.
func supertypesText(node *sitter.Node, rule Rule, doc *Document) string {
	var parts []string
	for _, field := range rule.SuperFields {
		if text := cleanSupertypes(doc.TextOf(node.ChildByFieldName(field))); text != "" {
			parts = append(parts, text)
		}
	}
	for _, kind := range rule.SuperKinds {
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(uint(i))
			if child == nil || child.Kind() != kind {
				continue
			}
			if text := cleanSupertypes(doc.TextOf(child)); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// modifiersText joins the texts of direct children whose kind is in the
// rule's modifier set, in document order.
func modifiersText(node *sitter.Node, rule Rule, doc *Document) string {
	if len(rule.ModifierKinds) == 0 {
		return ""
	}
	kinds := make(map[string]bool, len(rule.ModifierKinds))
	for _, k := range rule.ModifierKinds {
		kinds[k] = true
	}
	var parts []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child == nil || !kinds[child.Kind()] {
			continue
		}
		if text := collapseWhitespace(doc.TextOf(child)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// unwrapDeclarator follows nested "declarator" fields down to the
// innermost node, e.g. a C function_definition's declarator chain ends
// at the function's identifier.
func unwrapDeclarator(n *sitter.Node) *sitter.Node {
	for {
		d := n.ChildByFieldName("declarator")
		if d == nil {
			return n
		}
		n = d
	}
}

// fieldInChain looks a field up on the node itself and then on each node
// of its declarator chain, so C-style grammars that hang parameters off
// a nested declarator resolve like everyone else.
func fieldInChain(node *sitter.Node, field string) *sitter.Node {
	for n := node; n != nil; n = n.ChildByFieldName("declarator") {
		if f := n.ChildByFieldName(field); f != nil {
			return f
		}
	}
	return nil
}
