// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Distinguishes a missing or malformed value from a parsed zero

package parse

import (
	"strconv"
	"strings"
)

// Int parses an integer and reports whether the string held one
func Int(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
