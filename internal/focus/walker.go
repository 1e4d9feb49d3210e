package focus

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// FindScopeHierarchy computes the chain of indexable ancestors enclosing
// target, ordered from the document root down to the innermost node.
// The descent stops at the first level where no single child contains
// the target, so a cursor in the whitespace between two siblings never
// selects a false innermost leaf.
func FindScopeHierarchy(root *sitter.Node, target CursorRange, g *Grammar, doc *Document) []ContextNode {
	var chain []ContextNode
	for node := root; node != nil; node = childContaining(node, target) {
		if cn, ok := Classify(node, g, doc); ok {
			chain = append(chain, cn)
		}
	}
	return chain
}

// childContaining returns the child of n whose range fully contains
// target. Malformed trees can put the target inside more than one
// child; the smallest span wins so the innermost containment is
// followed. Returns nil when no single child contains the target.
func childContaining(n *sitter.Node, target CursorRange) *sitter.Node {
	var best *sitter.Node
	var bestSpan uint
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		if child == nil {
			continue
		}
		if !NodeRange(child).Contains(target) {
			continue
		}
		span := child.EndByte() - child.StartByte()
		if best == nil || span < bestSpan {
			best = child
			bestSpan = span
		}
	}
	return best
}

// CollectImports gathers import and include statements at file scope, in
// document order. It scans only the root's direct children; imports
// nested below file scope are ignored.
func CollectImports(root *sitter.Node, g *Grammar, doc *Document) (includes, imports []string) {
	importKinds := kindSet(g.ImportKinds)
	includeKinds := kindSet(g.IncludeKinds)
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(uint(i))
		if child == nil {
			continue
		}
		switch kind := child.Kind(); {
		case includeKinds[kind]:
			includes = append(includes, collapseWhitespace(doc.TextOf(child)))
		case importKinds[kind]:
			imports = append(imports, collapseWhitespace(doc.TextOf(child)))
		}
	}
	return includes, imports
}

func kindSet(kinds []string) map[string]bool {
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}
