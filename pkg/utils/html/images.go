// ABOUTME: Image discovery inside rendered post content
// ABOUTME: Supplies a featured image when a post has no embedded media

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstImage returns the src of the first image in the markup, or "" if none.
// Lazy-loading plugins often move the real URL to data-src.
func FirstImage(markup string) string {
	if !strings.Contains(markup, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var src string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"data-src", "src"} {
			if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" && !strings.HasPrefix(v, "data:") {
				src = strings.TrimSpace(v)
				return false
			}
		}
		return true
	})

	return src
}
