// ABOUTME: Excerpt truncation for plain text produced by ToText
// ABOUTME: Cuts on rune boundaries and marks the cut with an ellipsis

package html

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultExcerptLength is the cut-off used when no positive length is given
	DefaultExcerptLength = 150

	// Ellipsis is appended to text that was cut
	Ellipsis = "..."
)

// Truncate shortens text to at most maxLength characters followed by Ellipsis.
// Text that already fits is returned unchanged. The cut is not word-aware.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLength])) + Ellipsis
}
