// ABOUTME: Post domain model mirrors a WordPress post as returned by the REST API
// ABOUTME: Embedded relations are optional expansions read through typed accessors

package domain

import (
	"time"

	timeutil "wpblog-api/pkg/utils/time"
)

// Rendered wraps a WordPress field that is delivered as rendered markup
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Post represents a published WordPress post
type Post struct {
	// ID is the remote numeric identifier
	ID int `json:"id"`

	// Date is the publish date exactly as WordPress sends it (site-local, no zone)
	Date string `json:"date"`

	// Slug is the URL-safe unique identifier
	Slug string `json:"slug"`

	// Status is the lifecycle status ("publish", "draft", ...)
	Status string `json:"status"`

	// Link is the canonical URL of the post on the WordPress site
	Link string `json:"link,omitempty"`

	Title   Rendered `json:"title"`
	Content Rendered `json:"content"`
	Excerpt Rendered `json:"excerpt"`

	// AuthorID references the owning author
	AuthorID int `json:"author"`

	// FeaturedMediaID references the featured image, 0 when none is set
	FeaturedMediaID int `json:"featured_media"`

	CategoryIDs []int `json:"categories"`
	TagIDs      []int `json:"tags"`

	// Embedded holds relations expanded by the _embed query flag
	Embedded *Embedded `json:"_embedded,omitempty"`
}

// Embedded holds the expansions WordPress returns for a post when _embed is requested
type Embedded struct {
	Author        []Author `json:"author,omitempty"`
	FeaturedMedia []Media  `json:"wp:featuredmedia,omitempty"`
	Terms         [][]Term `json:"wp:term,omitempty"`
}

// PublishedAt parses the publish date, returning the zero time when it cannot be parsed
func (p *Post) PublishedAt() time.Time {
	return timeutil.ParseFlexibleTime(p.Date)
}

// Author returns the embedded author, or nil when it was not expanded
func (p *Post) Author() *Author {
	if p.Embedded == nil {
		return nil
	}
	for i := range p.Embedded.Author {
		if p.Embedded.Author[i].ID != 0 {
			return &p.Embedded.Author[i]
		}
	}
	return nil
}

// FeaturedMedia returns the embedded featured image, or nil when absent.
// WordPress embeds an error object with no id for private or deleted media.
func (p *Post) FeaturedMedia() *Media {
	if p.Embedded == nil {
		return nil
	}
	for i := range p.Embedded.FeaturedMedia {
		if p.Embedded.FeaturedMedia[i].ID != 0 {
			return &p.Embedded.FeaturedMedia[i]
		}
	}
	return nil
}

// Categories returns the embedded category terms
func (p *Post) Categories() []Term {
	return p.termsOf(TaxonomyCategory)
}

// Tags returns the embedded tag terms
func (p *Post) Tags() []Term {
	return p.termsOf(TaxonomyTag)
}

func (p *Post) termsOf(taxonomy string) []Term {
	if p.Embedded == nil {
		return nil
	}

	var terms []Term
	for _, group := range p.Embedded.Terms {
		for _, term := range group {
			if term.Taxonomy == taxonomy {
				terms = append(terms, term)
			}
		}
	}
	return terms
}
