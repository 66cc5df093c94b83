// ABOUTME: Category and term domain models for WordPress taxonomies
// ABOUTME: Categories form a tree through the parent reference

package domain

// Taxonomy names used by WordPress for built-in terms
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// Category represents a WordPress category (or any taxonomy term)
type Category struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Taxonomy    string `json:"taxonomy"`

	// Parent is the parent category id, 0 for a root category
	Parent int `json:"parent"`
}

// Term is a taxonomy term as embedded in a post; it has the same shape as a category
type Term = Category

// IsRoot reports whether the category sits at the top of the tree
func (c *Category) IsRoot() bool {
	return c.Parent == 0
}
