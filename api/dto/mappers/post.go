// ABOUTME: Mappers for converting WordPress domain models to API DTOs
// ABOUTME: Normalizes rendered markup into plain text, excerpts and reading times

package mappers

import (
	"net/url"

	"wpblog-api/api/dto/responses"
	"wpblog-api/core/domain"
	"wpblog-api/pkg/utils/duration"
	htmlutil "wpblog-api/pkg/utils/html"

	"github.com/jinzhu/copier"
)

// Content formats for post bodies
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// AvatarSize is the avatar_urls key used for author images
const AvatarSize = "96"

// Options controls the derived fields of post views
type Options struct {
	// ExcerptLength is the maximum excerpt length in characters
	ExcerptLength int

	// WordsPerMinute is the reading speed used for reading time
	WordsPerMinute int

	// ReadingTime includes the reading time estimate when set
	ReadingTime bool
}

// ToPostSummary converts a post to its listing view
func ToPostSummary(post *domain.Post, opts Options) responses.PostSummaryResponse {
	summary := responses.PostSummaryResponse{
		ID:         post.ID,
		Slug:       post.Slug,
		Title:      htmlutil.ToText(post.Title.Rendered),
		Excerpt:    htmlutil.Truncate(htmlutil.ToText(post.Excerpt.Rendered), opts.ExcerptLength),
		Link:       post.Link,
		Date:       post.Date,
		Categories: ToCategoryResponses(post.Categories()),
	}

	if published := post.PublishedAt(); !published.IsZero() {
		summary.PublishedAt = &published
	}

	if opts.ReadingTime {
		summary.ReadingTime = duration.ReadingTime(htmlutil.ToText(post.Content.Rendered), opts.WordsPerMinute)
	}

	if author := post.Author(); author != nil {
		a := ToAuthorResponse(author)
		summary.Author = &a
	}

	summary.FeaturedImage = featuredImage(post, summary.Title)

	return summary
}

// ToPostSummaries converts a slice of posts, never returning nil
func ToPostSummaries(posts []domain.Post, opts Options) []responses.PostSummaryResponse {
	summaries := make([]responses.PostSummaryResponse, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, ToPostSummary(&posts[i], opts))
	}
	return summaries
}

// ToPostDetail converts a post to its full view with content in the given
// format. On a markdown conversion failure the HTML view is returned together
// with the error.
func ToPostDetail(post *domain.Post, opts Options, format string) (responses.PostDetailResponse, error) {
	detail := responses.PostDetailResponse{
		PostSummaryResponse: ToPostSummary(post, opts),
		Content:             post.Content.Rendered,
		Format:              FormatHTML,
		Tags:                ToCategoryResponses(post.Tags()),
	}

	if format != FormatMarkdown {
		return detail, nil
	}

	markdown, err := htmlutil.ToMarkdown(post.Content.Rendered, siteDomain(post.Link))
	if err != nil {
		return detail, err
	}
	detail.Content = markdown
	detail.Format = FormatMarkdown
	return detail, nil
}

// featuredImage prefers the embedded media and falls back to the first image in the content
func featuredImage(post *domain.Post, title string) *responses.ImageResponse {
	if media := post.FeaturedMedia(); media != nil && media.SourceURL != "" {
		alt := media.AltText
		if alt == "" {
			alt = title
		}
		return &responses.ImageResponse{
			URL:    media.SourceURL,
			Alt:    alt,
			Width:  media.MediaDetails.Width,
			Height: media.MediaDetails.Height,
		}
	}

	if src := htmlutil.FirstImage(post.Content.Rendered); src != "" {
		return &responses.ImageResponse{URL: src, Alt: title}
	}
	return nil
}

func siteDomain(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Host
}

// ToAuthorResponse converts an author
func ToAuthorResponse(author *domain.Author) responses.AuthorResponse {
	return responses.AuthorResponse{
		ID:          author.ID,
		Name:        author.Name,
		Slug:        author.Slug,
		Description: author.Description,
		Avatar:      author.Avatar(AvatarSize),
	}
}

// ToAuthorResponses converts a slice of authors, never returning nil
func ToAuthorResponses(authors []domain.Author) []responses.AuthorResponse {
	result := make([]responses.AuthorResponse, 0, len(authors))
	for i := range authors {
		result = append(result, ToAuthorResponse(&authors[i]))
	}
	return result
}

// ToCategoryResponse converts a category or tag; names arrive HTML-escaped
func ToCategoryResponse(category *domain.Category) responses.CategoryResponse {
	var resp responses.CategoryResponse
	// Same-named fields carry over; both structs are plain ints and strings so Copy cannot fail
	_ = copier.Copy(&resp, category)
	resp.Name = htmlutil.ToText(category.Name)
	return resp
}

// ToCategoryResponses converts a slice of terms, never returning nil
func ToCategoryResponses(categories []domain.Category) []responses.CategoryResponse {
	result := make([]responses.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, ToCategoryResponse(&categories[i]))
	}
	return result
}

// ToPaginationResponse converts pagination details; nil stays nil
func ToPaginationResponse(info *domain.PaginationInfo) *responses.PaginationResponse {
	if info == nil {
		return nil
	}
	return &responses.PaginationResponse{
		Total:       info.Total,
		TotalPages:  info.TotalPages,
		CurrentPage: info.CurrentPage,
		HasNext:     info.HasNext,
		HasPrev:     info.HasPrev,
	}
}

// ToPostListResponse converts a page of posts
func ToPostListResponse(posts []domain.Post, pagination *domain.PaginationInfo, opts Options) responses.PostListResponse {
	return responses.PostListResponse{
		Posts:      ToPostSummaries(posts, opts),
		Pagination: ToPaginationResponse(pagination),
	}
}
