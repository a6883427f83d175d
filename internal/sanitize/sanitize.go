// Package sanitize normalizes user-supplied strings before they are
// persisted: markup tags are stripped and the remainder is HTML-escaped,
// so values read back from the database are safe to render as-is.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Clean strips tags and escapes HTML entities in s.
func Clean(s string) string {
	stripped := tagPattern.ReplaceAllString(s, "")
	return html.EscapeString(strings.TrimSpace(stripped))
}
