package rendering

import "strings"

// EscapeHTML escapes characters that could break block structure, so stored
// resume text is always treated as plain text insertion.
// Special characters: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
