// ABOUTME: Markdown conversion for rendered post content
// ABOUTME: Wraps html-to-markdown with the options used for blog bodies

package html

import (
	md "github.com/JohannesKaufmann/html-to-markdown"
)

// ToMarkdown converts rendered HTML into Markdown. Relative links are resolved
// against domain when it is non-empty.
func ToMarkdown(markup, domain string) (string, error) {
	if markup == "" {
		return "", nil
	}

	converter := md.NewConverter(domain, true, nil)
	return converter.ConvertString(markup)
}
