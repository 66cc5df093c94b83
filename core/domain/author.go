// ABOUTME: Author domain model for WordPress users exposed through the REST API
// ABOUTME: Provides avatar lookup across the size keys WordPress returns

package domain

import (
	"sort"
	"strconv"
)

// Author represents a WordPress user who publishes posts
type Author struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`

	// AvatarURLs maps a size key ("24", "48", "96") to an image URL
	AvatarURLs map[string]string `json:"avatar_urls,omitempty"`
}

// Avatar returns the avatar URL for the given size key, falling back to the
// largest available size. Returns "" when the author has no avatars.
func (a *Author) Avatar(size string) string {
	if url, ok := a.AvatarURLs[size]; ok {
		return url
	}

	best, bestSize := "", -1
	keys := make([]string, 0, len(a.AvatarURLs))
	for k := range a.AvatarURLs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil {
			n = 0
		}
		if n > bestSize {
			best, bestSize = a.AvatarURLs[k], n
		}
	}
	return best
}
