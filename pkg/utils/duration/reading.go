// ABOUTME: Reading-time estimation for plain-text post bodies
// ABOUTME: Converts a word count into whole minutes and a display label

package duration

import (
	"fmt"
	"strings"
)

// DefaultWordsPerMinute is the reading speed used when none is configured
const DefaultWordsPerMinute = 200

// minReadingMinutes is the smallest estimate ever displayed
const minReadingMinutes = 1

// ReadingMinutes estimates whole minutes needed to read text, rounding up
func ReadingMinutes(text string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}

	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < minReadingMinutes {
		return minReadingMinutes
	}
	return minutes
}

// FormatReadingTime renders minutes as "<n> min read"
func FormatReadingTime(minutes int) string {
	return fmt.Sprintf("%d min read", minutes)
}

// ReadingTime estimates and formats the reading time for text
func ReadingTime(text string, wordsPerMinute int) string {
	return FormatReadingTime(ReadingMinutes(text, wordsPerMinute))
}
