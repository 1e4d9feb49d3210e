package focus

import "strings"

// Assembled is the renderable result of one extraction: the structured
// context plus the breadcrumb/body split used to produce the final text.
type Assembled struct {
	Info ContextInfo

	// Breadcrumbs holds the one-line signatures of the ancestors kept
	// above the body, root to innermost.
	Breadcrumbs []string

	// Body is the source text of the innermost safe node, possibly
	// truncated to a window around the target.
	Body string

	// BodyRange is the line span of Body within the document.
	BodyRange CursorRange

	// Truncated reports whether the body was cut down to a window.
	Truncated bool
}

// Render joins breadcrumbs and body into the final context text. When
// the innermost body alone fits the budget, the rendered line count
// never exceeds it.
func (a Assembled) Render() string {
	parts := make([]string, 0, len(a.Breadcrumbs)+1)
	parts = append(parts, a.Breadcrumbs...)
	if a.Body != "" {
		parts = append(parts, a.Body)
	}
	return strings.Join(parts, "\n")
}

// Empty reports whether the extraction produced no structural context.
// Callers should fall back to a raw line window in that case.
func (a Assembled) Empty() bool {
	return len(a.Info.Nodes) == 0
}

// Assemble fits the scope chain into maxLines. The innermost node with a
// safe code range supplies the body; outer ancestors contribute one-line
// breadcrumb signatures, dropped from the outermost end inward under
// budget pressure. The body itself is never dropped: when it alone
// exceeds the budget it is truncated to a window of maxLines lines
// centered on the target range.
func Assemble(chain []ContextNode, doc *Document, target CursorRange, maxLines int) Assembled {
	if maxLines < 1 {
		maxLines = 1
	}
	if len(chain) == 0 {
		return Assembled{}
	}

	// The body boundary must be safe to stand alone; fall back to the
	// nearest ancestor when the innermost entries are bare bindings or
	// calls.
	bodyIdx := len(chain) - 1
	for bodyIdx >= 0 && !chain[bodyIdx].CanBeUsedAsCodeRange {
		bodyIdx--
	}
	if bodyIdx < 0 {
		return assembleSignaturesOnly(chain, maxLines)
	}

	body := chain[bodyIdx]
	bodyLines := doc.LineSpan(body.Range.Start.Row, body.Range.End.Row)
	bodyStartRow := body.Range.Start.Row

	crumbs := bodyIdx
	for crumbs > 0 && crumbs+len(bodyLines) > maxLines {
		crumbs--
	}

	truncated := false
	if len(bodyLines) > maxLines {
		bodyLines, bodyStartRow = centerWindow(bodyLines, bodyStartRow, target, maxLines)
		truncated = true
	}

	// Entries below the body boundary stay in the structured result:
	// their source is already inside the body text.
	kept := chain[bodyIdx-crumbs:]
	breadcrumbs := make([]string, 0, crumbs)
	for _, cn := range kept[:crumbs] {
		breadcrumbs = append(breadcrumbs, cn.Signature)
	}

	return Assembled{
		Info:        ContextInfo{Nodes: kept},
		Breadcrumbs: breadcrumbs,
		Body:        strings.Join(bodyLines, "\n"),
		BodyRange: CursorRange{
			Start: Point{Row: bodyStartRow},
			End:   Point{Row: bodyStartRow + len(bodyLines) - 1},
		},
		Truncated: truncated,
	}
}

// assembleSignaturesOnly handles chains with no safe body anywhere:
// breadcrumbs only, dropped outermost-first to fit, keeping at least the
// innermost signature.
func assembleSignaturesOnly(chain []ContextNode, maxLines int) Assembled {
	kept := chain
	for len(kept) > 1 && len(kept) > maxLines {
		kept = kept[1:]
	}
	breadcrumbs := make([]string, 0, len(kept))
	for _, cn := range kept {
		breadcrumbs = append(breadcrumbs, cn.Signature)
	}
	return Assembled{
		Info:        ContextInfo{Nodes: kept},
		Breadcrumbs: breadcrumbs,
	}
}

// centerWindow returns a window of at most maxLines lines centered on
// the target range, clamped to the span of lines. The second return
// value is the document row of the window's first line.
func centerWindow(lines []string, startRow int, target CursorRange, maxLines int) ([]string, int) {
	mid := (target.Start.Row + target.End.Row) / 2
	rel := mid - startRow
	if rel < 0 {
		rel = 0
	}
	if rel >= len(lines) {
		rel = len(lines) - 1
	}

	from := rel - maxLines/2
	if from < 0 {
		from = 0
	}
	to := from + maxLines
	if to > len(lines) {
		to = len(lines)
		from = to - maxLines
		if from < 0 {
			from = 0
		}
	}
	return lines[from:to], startRow + from
}
