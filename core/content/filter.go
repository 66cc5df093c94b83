// ABOUTME: Query filters for post collections
// ABOUTME: Translates filter fields into WordPress REST query parameters

package content

import (
	"net/url"
	"strconv"
	"strings"
)

// PostFilter narrows a post listing. Zero values are omitted from the request.
type PostFilter struct {
	// Page is 1-based; 0 means the first page
	Page int

	// PerPage is the page size; 0 uses the WordPress default (10)
	PerPage int

	// Category restricts results to a category id
	Category int

	// Author restricts results to an author id
	Author int

	// Search is a free-text query
	Search string
}

// CurrentPage returns the page the filter asks for, defaulting to 1
func (f PostFilter) CurrentPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

func (f PostFilter) values() url.Values {
	v := url.Values{}
	v.Set("_embed", "true")
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Category > 0 {
		v.Set("categories", strconv.Itoa(f.Category))
	}
	if f.Author > 0 {
		v.Set("author", strconv.Itoa(f.Author))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		v.Set("search", s)
	}
	return v
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
