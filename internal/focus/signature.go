package focus

import "strings"

// signatureParts accumulates the pieces of a one-line signature and
// renders them in a single deterministic pass, instead of rewriting one
// string through chained transforms.
type signatureParts struct {
	modifiers  string
	keyword    string
	name       string
	detail     string
	supertypes string
}

// render produces "<modifiers> <keyword> <name><detail>: <supertypes>".
// A detail that opens a parameter list attaches directly to the name.
// The result never contains a line break.
func (s signatureParts) render() string {
	var b strings.Builder
	for _, part := range []string{s.modifiers, s.keyword, s.name} {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	if s.detail != "" {
		if b.Len() > 0 && !strings.HasPrefix(s.detail, "(") {
			b.WriteByte(' ')
		}
		b.WriteString(s.detail)
	}
	if s.supertypes != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(s.supertypes)
	}
	return collapseWhitespace(b.String())
}

// collapseWhitespace folds newlines and runs of whitespace into single
// spaces so signatures stay on one line.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanSupertypes strips the syntax wrapping a supertype list: leading
// heritage keywords, colons, and enclosing parentheses, e.g.
// "(Base)" -> "Base", "extends Base" -> "Base", "< Base" -> "Base".
func cleanSupertypes(s string) string {
	s = collapseWhitespace(s)
	for {
		trimmed := s
		trimmed = strings.TrimPrefix(trimmed, "extends ")
		trimmed = strings.TrimPrefix(trimmed, "implements ")
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "<"))
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, ":"))
		if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
			trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		}
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
