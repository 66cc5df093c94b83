// ABOUTME: Response DTOs for blog content endpoints
// ABOUTME: Plain-text, presentation-ready views of WordPress posts and taxonomies

package responses

import "time"

// PostSummaryResponse is a post as shown in listings and cards
type PostSummaryResponse struct {
	ID            int                `json:"id" doc:"WordPress post ID"`
	Slug          string             `json:"slug" doc:"URL-safe post identifier"`
	Title         string             `json:"title" doc:"Plain-text title"`
	Excerpt       string             `json:"excerpt" doc:"Plain-text excerpt, truncated"`
	Link          string             `json:"link,omitempty" doc:"Canonical URL on the WordPress site"`
	Date          string             `json:"date" doc:"Publish date as sent by WordPress"`
	PublishedAt   *time.Time         `json:"published_at,omitempty" doc:"Parsed publish date"`
	ReadingTime   string             `json:"reading_time,omitempty" doc:"Estimated reading time, e.g. \"4 min read\""`
	Author        *AuthorResponse    `json:"author,omitempty" doc:"Post author"`
	FeaturedImage *ImageResponse     `json:"featured_image,omitempty" doc:"Featured image"`
	Categories    []CategoryResponse `json:"categories" doc:"Categories the post is filed under"`
}

// PostDetailResponse is a single post with its full content
type PostDetailResponse struct {
	PostSummaryResponse
	Content string             `json:"content" doc:"Post body in the requested format"`
	Format  string             `json:"format" enum:"html,markdown" doc:"Format of content"`
	Tags    []CategoryResponse `json:"tags" doc:"Tags attached to the post"`
}

// ImageResponse describes an image to display
type ImageResponse struct {
	URL    string `json:"url" doc:"Image URL"`
	Alt    string `json:"alt,omitempty" doc:"Alternative text"`
	Width  int    `json:"width,omitempty" doc:"Width in pixels, when known"`
	Height int    `json:"height,omitempty" doc:"Height in pixels, when known"`
}

// AuthorResponse represents a post author
type AuthorResponse struct {
	ID          int    `json:"id" doc:"WordPress user ID"`
	Name        string `json:"name" doc:"Display name"`
	Slug        string `json:"slug" doc:"URL-safe author identifier"`
	Description string `json:"description,omitempty" doc:"Author biography"`
	Avatar      string `json:"avatar,omitempty" doc:"Avatar image URL"`
}

// CategoryResponse represents a category or tag
type CategoryResponse struct {
	ID          int    `json:"id" doc:"WordPress term ID"`
	Name        string `json:"name" doc:"Plain-text name"`
	Slug        string `json:"slug" doc:"URL-safe term identifier"`
	Description string `json:"description,omitempty" doc:"Term description"`
	Count       int    `json:"count" doc:"Number of published posts"`
	Parent      int    `json:"parent,omitempty" doc:"Parent term ID, 0 for top-level terms"`
}

// PaginationResponse describes where a page sits in a listing
type PaginationResponse struct {
	Total       int  `json:"total" doc:"Total number of posts"`
	TotalPages  int  `json:"total_pages" doc:"Total number of pages"`
	CurrentPage int  `json:"current_page" doc:"Current page (1-based)"`
	HasNext     bool `json:"has_next" doc:"Whether a later page exists"`
	HasPrev     bool `json:"has_prev" doc:"Whether an earlier page exists"`
}

// PostListResponse is one page of posts. Pagination is null when WordPress
// did not report totals.
type PostListResponse struct {
	Posts      []PostSummaryResponse `json:"posts" doc:"Posts on this page"`
	Pagination *PaginationResponse   `json:"pagination" doc:"Pagination details, null when unknown"`
}

// PostPageResponse is the post detail view
type PostPageResponse struct {
	Post    PostDetailResponse    `json:"post" doc:"The requested post"`
	Related []PostSummaryResponse `json:"related" doc:"Posts sharing a category"`
}

// HomeResponse is the landing page view
type HomeResponse struct {
	Posts      []PostSummaryResponse `json:"posts" doc:"Latest posts"`
	Categories []CategoryResponse    `json:"categories" doc:"Top categories"`
}

// CategoriesResponse lists categories
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories" doc:"All categories"`
}

// CategoryPageResponse is a category with a page of its posts
type CategoryPageResponse struct {
	Category CategoryResponse `json:"category" doc:"The requested category"`
	PostListResponse
}

// AuthorsResponse lists authors
type AuthorsResponse struct {
	Authors []AuthorResponse `json:"authors" doc:"All authors"`
}

// AuthorPageResponse is an author with a page of their posts
type AuthorPageResponse struct {
	Author AuthorResponse `json:"author" doc:"The requested author"`
	PostListResponse
}
