// ABOUTME: Time parsing utilities for the date formats WordPress emits
// ABOUTME: Tolerates site-local dates without a zone as well as GMT and RFC variants

package time

import (
	"strings"
	"time"
)

// Formats seen in WordPress REST payloads ("date", "date_gmt", "modified") and
// in feeds or plugins that rewrite them
var timeFormats = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Zone-less values are returned in UTC. The zero time means no format matched.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}
