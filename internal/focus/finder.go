package focus

// Finder orchestrates one extraction: parse, walk, classify, assemble.
// It holds no state between calls; a single Finder may serve concurrent
// extractions as long as each call gets its own Document.
type Finder struct{}

// NewFinder creates a new finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Extract runs one extraction over doc using the given grammar. A parse
// failure degrades to an empty result rather than an error; the caller
// treats "no structural context" as a signal to fall back to a raw line
// window. Out-of-bounds target ranges are clamped to the document.
func (f *Finder) Extract(doc *Document, g *Grammar, target CursorRange, maxLines int) Assembled {
	if doc == nil || g == nil {
		return Assembled{}
	}
	target = doc.Clamp(target.Normalized())

	tree, err := g.Parse(doc.Content)
	if err != nil {
		return Assembled{}
	}
	defer tree.Close()

	root := tree.RootNode()
	chain := FindScopeHierarchy(root, target, g, doc)

	assembled := Assemble(chain, doc, target, maxLines)
	assembled.Info.Includes, assembled.Info.Imports = CollectImports(root, g, doc)

	// Node handles die with the tree; drop them so nothing outlives
	// this call.
	for i := range assembled.Info.Nodes {
		assembled.Info.Nodes[i].Node = nil
	}
	return assembled
}
