// Package focus extracts a semantically structured, size-bounded excerpt
// of the code surrounding a cursor position. Given a document, a target
// range, and a line budget, it walks the syntax tree supplied by a
// language grammar, summarizes the enclosing scopes into one-line
// signatures, and assembles a context that fits the budget.
package focus

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Point is a zero-based line/column position in a document.
type Point struct {
	Row    int
	Column int
}

// Before reports whether p comes before q in document order.
func (p Point) Before(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Column < q.Column
}

// BeforeOrEqual reports whether p comes before or equals q.
func (p Point) BeforeOrEqual(q Point) bool {
	return !q.Before(p)
}

// CursorRange is a start/end pair of positions. Column offsets are
// half-open; a range with Start == End is a bare cursor.
type CursorRange struct {
	Start Point
	End   Point
}

// Normalized returns the range with start and end swapped if the caller
// supplied them out of document order.
func (r CursorRange) Normalized() CursorRange {
	if r.End.Before(r.Start) {
		return CursorRange{Start: r.End, End: r.Start}
	}
	return r
}

// IsPoint reports whether the range is collapsed to a single position.
func (r CursorRange) IsPoint() bool {
	return r.Start == r.End
}

// Contains reports whether r fully contains other. Boundaries are
// inclusive, so a collapsed cursor sitting exactly on a node's opening
// or closing token still counts as inside that node.
func (r CursorRange) Contains(other CursorRange) bool {
	return r.Start.BeforeOrEqual(other.Start) && other.End.BeforeOrEqual(r.End)
}

// StrictlyContains reports whether r contains other and is not equal to it.
func (r CursorRange) StrictlyContains(other CursorRange) bool {
	return r.Contains(other) && r != other
}

// NodeRange returns the line/column range covered by a tree node.
func NodeRange(n *sitter.Node) CursorRange {
	start := n.StartPosition()
	end := n.EndPosition()
	return CursorRange{
		Start: Point{Row: int(start.Row), Column: int(start.Column)},
		End:   Point{Row: int(end.Row), Column: int(end.Column)},
	}
}

// Document is an immutable snapshot of one source file. The engine only
// reads it; ownership stays with the caller.
type Document struct {
	Path    string
	Content []byte
	Lines   []string
}

// NewDocument builds a document snapshot from raw file content.
func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   strings.Split(string(content), "\n"),
	}
}

// TextOf returns the source text covered by a node, or "" for nil nodes
// and out-of-bounds spans.
func (d *Document) TextOf(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	start := int(n.StartByte())
	end := int(n.EndByte())
	if start < 0 || end > len(d.Content) || start > end {
		return ""
	}
	return string(d.Content[start:end])
}

// Clamp returns r adjusted to the nearest valid position in the
// document. Ranges referencing lines beyond the document are pulled back
// to the last line rather than rejected.
func (d *Document) Clamp(r CursorRange) CursorRange {
	return CursorRange{
		Start: d.clampPoint(r.Start),
		End:   d.clampPoint(r.End),
	}
}

func (d *Document) clampPoint(p Point) Point {
	if len(d.Lines) == 0 {
		return Point{}
	}
	if p.Row < 0 {
		return Point{}
	}
	if p.Row >= len(d.Lines) {
		last := len(d.Lines) - 1
		return Point{Row: last, Column: len(d.Lines[last])}
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if p.Column > len(d.Lines[p.Row]) {
		p.Column = len(d.Lines[p.Row])
	}
	return p
}

// LineSpan returns the lines from startRow to endRow inclusive
// (zero-based), clamped to the document.
func (d *Document) LineSpan(startRow, endRow int) []string {
	if startRow < 0 {
		startRow = 0
	}
	if endRow >= len(d.Lines) {
		endRow = len(d.Lines) - 1
	}
	if startRow > endRow {
		return nil
	}
	span := make([]string, endRow-startRow+1)
	copy(span, d.Lines[startRow:endRow+1])
	return span
}

// ContextNode is the classified summary of one node on the scope chain.
type ContextNode struct {
	// Node is a non-owning handle into the parse tree. It is valid only
	// for the duration of the extraction call that produced it; the
	// finder clears it before releasing the tree.
	Node *sitter.Node

	// Kind is the recognized construct kind.
	Kind Kind

	// Range is the node's line/column span, captured at classification
	// time so it outlives the tree handle.
	Range CursorRange

	// Signature is a single-line summary of the construct. It never
	// contains a line break.
	Signature string

	// Name is the construct's identifier, or a fixed label such as
	// "closure" or "function call" for anonymous constructs.
	Name string

	// CanBeUsedAsCodeRange reports whether the node's source range is a
	// safe self-contained replacement unit. Plain variable/constant
	// bindings and bare call expressions are not: truncating to exactly
	// their span leaves a dangling statement.
	CanBeUsedAsCodeRange bool
}

// ContextInfo is the structured result of one extraction. Nodes are
// ordered root to innermost, and each node's range strictly contains the
// next one's.
type ContextInfo struct {
	Nodes    []ContextNode
	Includes []string
	Imports  []string
}
