package fragment

import "strings"

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// EscapeHTML replaces the reserved HTML characters &, <, >, " and ' with
// their entity equivalents.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// JoinEscaped escapes every item and joins them with sep. The separator is
// written verbatim.
func JoinEscaped(items []string, sep string) string {
	if len(items) == 0 {
		return ""
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeHTML(item)
	}
	return strings.Join(escaped, sep)
}
