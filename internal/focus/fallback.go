package focus

import "strings"

// LineWindow returns a raw window of up to maxLines lines centered on
// the target range. It is the fallback strategy for documents where no
// structural context is available (unparsable source, unknown language,
// cursor outside every recognized construct).
func LineWindow(doc *Document, target CursorRange, maxLines int) string {
	if doc == nil || len(doc.Lines) == 0 {
		return ""
	}
	if maxLines < 1 {
		maxLines = 1
	}
	target = doc.Clamp(target.Normalized())
	lines, _ := centerWindow(doc.Lines, 0, target, maxLines)
	return strings.Join(lines, "\n")
}
