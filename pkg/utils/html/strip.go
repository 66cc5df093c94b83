// ABOUTME: HTML utilities for turning rendered WordPress markup into plain text
// ABOUTME: Strips tags, decodes a fixed entity set and normalizes whitespace

package html

import (
	"errors"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

// entityReplacer decodes the entities WordPress commonly emits in titles and
// excerpts. Anything outside this set is left as literal text.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&hellip;", "...",
)

// ToText removes all markup from an HTML fragment and returns normalized plain text
func ToText(markup string) string {
	if markup == "" {
		return ""
	}

	var b strings.Builder
	consumed := 0
	z := xhtml.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			// A '<' that never closes is text, not a tag; the tokenizer drops it at EOF
			if errors.Is(z.Err(), io.EOF) && consumed < len(markup) {
				b.WriteString(markup[consumed:])
			}
			break
		}
		raw := z.Raw()
		consumed += len(raw)
		if tt == xhtml.TextToken {
			// Raw keeps entities encoded so only the fixed set gets decoded
			b.Write(raw)
		}
	}

	return strings.Join(strings.Fields(DecodeEntities(b.String())), " ")
}

// DecodeEntities decodes the supported HTML entities in a single pass
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}
