// ABOUTME: Post handlers for the Huma API
// ABOUTME: Serves paginated post listings and single posts with related posts

package handlers

import (
	"context"
	"net/http"

	"wpblog-api/api/dto/mappers"
	"wpblog-api/api/dto/responses"
	"wpblog-api/core/content"
	"wpblog-api/core/interfaces"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	presenter
	content ContentService
	logger  interfaces.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(contentService ContentService, blog config.BlogConfig, flags featureflags.Manager, logger interfaces.Logger) *PostHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &PostHandler{
		presenter: newPresenter(blog, flags),
		content:   contentService,
		logger:    logger,
	}
}

// RegisterRoutes registers all post-related routes
func (h *PostHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPosts",
		Method:      http.MethodGet,
		Path:        "/posts",
		Summary:     "List posts",
		Description: "Returns a page of published posts, optionally filtered by category, author or search term",
		Tags:        []string{"Posts"},
	}, h.ListPosts)

	huma.Register(api, huma.Operation{
		OperationID: "getPost",
		Method:      http.MethodGet,
		Path:        "/posts/{slug}",
		Summary:     "Get a post",
		Description: "Returns a single post by slug together with posts from the same categories",
		Tags:        []string{"Posts"},
	}, h.GetPost)
}

// ListPostsInput defines the input for the ListPosts operation
type ListPostsInput struct {
	Page     int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage  int    `query:"per_page" minimum:"1" maximum:"100" doc:"Posts per page, defaults to the configured page size"`
	Category int    `query:"category" minimum:"1" doc:"Only posts in this category ID"`
	Author   int    `query:"author" minimum:"1" doc:"Only posts by this author ID"`
	Search   string `query:"search" maxLength:"200" doc:"Full-text search term"`
}

// ListPostsOutput defines the output for the ListPosts operation
type ListPostsOutput struct {
	Body responses.PostListResponse
}

// ListPosts handles the GET /posts endpoint
func (h *PostHandler) ListPosts(ctx context.Context, input *ListPostsInput) (*ListPostsOutput, error) {
	page := h.content.ListPosts(ctx, content.PostFilter{
		Page:     input.Page,
		PerPage:  h.perPage(input.PerPage),
		Category: input.Category,
		Author:   input.Author,
		Search:   input.Search,
	})

	return &ListPostsOutput{
		Body: mappers.ToPostListResponse(page.Posts, page.Pagination, h.options(ctx)),
	}, nil
}

// GetPostInput defines the input for the GetPost operation
type GetPostInput struct {
	Slug   string `path:"slug" minLength:"1" maxLength:"200" doc:"Post slug"`
	Format string `query:"format" enum:"html,markdown" default:"html" doc:"Format of the post content"`
}

// GetPostOutput defines the output for the GetPost operation
type GetPostOutput struct {
	Body responses.PostPageResponse
}

// GetPost handles the GET /posts/{slug} endpoint
func (h *PostHandler) GetPost(ctx context.Context, input *GetPostInput) (*GetPostOutput, error) {
	lookup := h.content.GetPostBySlug(ctx, input.Slug)
	if !lookup.Found() {
		return nil, notFound("post", input.Slug)
	}
	post := lookup.Value
	opts := h.options(ctx)

	format := input.Format
	if format == mappers.FormatMarkdown && !h.flags.IsEnabled(ctx, featureflags.Markdown) {
		format = mappers.FormatHTML
	}

	detail, err := mappers.ToPostDetail(post, opts, format)
	if err != nil {
		h.logger.Warn("Markdown conversion failed, serving HTML", map[string]interface{}{
			"slug":  post.Slug,
			"error": err.Error(),
		})
	}

	related := make([]responses.PostSummaryResponse, 0)
	if h.flags.IsEnabled(ctx, featureflags.RelatedPosts) && h.blog.RelatedPostsCount > 0 {
		list := h.content.GetRelatedPosts(ctx, post.ID, post.CategoryIDs, h.blog.RelatedPostsCount)
		related = mappers.ToPostSummaries(list.Items, opts)
	}

	return &GetPostOutput{
		Body: responses.PostPageResponse{
			Post:    detail,
			Related: related,
		},
	}, nil
}
