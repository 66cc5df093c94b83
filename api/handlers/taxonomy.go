// ABOUTME: Category and author handlers for the Huma API
// ABOUTME: Lists taxonomies and serves a taxonomy page with its posts

package handlers

import (
	"context"
	"net/http"

	"wpblog-api/api/dto/mappers"
	"wpblog-api/api/dto/responses"
	"wpblog-api/core/content"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// TaxonomyHandler handles category and author HTTP requests
type TaxonomyHandler struct {
	presenter
	content ContentService
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(contentService ContentService, blog config.BlogConfig, flags featureflags.Manager) *TaxonomyHandler {
	return &TaxonomyHandler{
		presenter: newPresenter(blog, flags),
		content:   contentService,
	}
}

// RegisterRoutes registers category and author routes
func (h *TaxonomyHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "getCategory",
		Method:      http.MethodGet,
		Path:        "/categories/{slug}",
		Summary:     "Get a category with its posts",
		Tags:        []string{"Categories"},
	}, h.GetCategory)

	huma.Register(api, huma.Operation{
		OperationID: "listAuthors",
		Method:      http.MethodGet,
		Path:        "/authors",
		Summary:     "List authors",
		Tags:        []string{"Authors"},
	}, h.ListAuthors)

	huma.Register(api, huma.Operation{
		OperationID: "getAuthor",
		Method:      http.MethodGet,
		Path:        "/authors/{slug}",
		Summary:     "Get an author with their posts",
		Tags:        []string{"Authors"},
	}, h.GetAuthor)
}

// TaxonomyPageInput identifies a category or author and a page of its posts
type TaxonomyPageInput struct {
	Slug string `path:"slug" minLength:"1" maxLength:"200" doc:"Category or author slug"`
	Page int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
}

// ListCategoriesOutput defines the output for the ListCategories operation
type ListCategoriesOutput struct {
	Body responses.CategoriesResponse
}

// ListCategories handles the GET /categories endpoint
func (h *TaxonomyHandler) ListCategories(ctx context.Context, input *struct{}) (*ListCategoriesOutput, error) {
	list := h.content.ListCategories(ctx)
	return &ListCategoriesOutput{
		Body: responses.CategoriesResponse{Categories: mappers.ToCategoryResponses(list.Items)},
	}, nil
}

// GetCategoryOutput defines the output for the GetCategory operation
type GetCategoryOutput struct {
	Body responses.CategoryPageResponse
}

// GetCategory handles the GET /categories/{slug} endpoint
func (h *TaxonomyHandler) GetCategory(ctx context.Context, input *TaxonomyPageInput) (*GetCategoryOutput, error) {
	lookup := h.content.GetCategoryBySlug(ctx, input.Slug)
	if !lookup.Found() {
		return nil, notFound("category", input.Slug)
	}

	page := h.content.ListPosts(ctx, content.PostFilter{
		Page:     input.Page,
		PerPage:  h.perPage(0),
		Category: lookup.Value.ID,
	})

	return &GetCategoryOutput{
		Body: responses.CategoryPageResponse{
			Category:         mappers.ToCategoryResponse(lookup.Value),
			PostListResponse: mappers.ToPostListResponse(page.Posts, page.Pagination, h.options(ctx)),
		},
	}, nil
}

// ListAuthorsOutput defines the output for the ListAuthors operation
type ListAuthorsOutput struct {
	Body responses.AuthorsResponse
}

// ListAuthors handles the GET /authors endpoint
func (h *TaxonomyHandler) ListAuthors(ctx context.Context, input *struct{}) (*ListAuthorsOutput, error) {
	list := h.content.ListAuthors(ctx)
	return &ListAuthorsOutput{
		Body: responses.AuthorsResponse{Authors: mappers.ToAuthorResponses(list.Items)},
	}, nil
}

// GetAuthorOutput defines the output for the GetAuthor operation
type GetAuthorOutput struct {
	Body responses.AuthorPageResponse
}

// GetAuthor handles the GET /authors/{slug} endpoint
func (h *TaxonomyHandler) GetAuthor(ctx context.Context, input *TaxonomyPageInput) (*GetAuthorOutput, error) {
	lookup := h.content.GetAuthorBySlug(ctx, input.Slug)
	if !lookup.Found() {
		return nil, notFound("author", input.Slug)
	}

	page := h.content.ListPosts(ctx, content.PostFilter{
		Page:    input.Page,
		PerPage: h.perPage(0),
		Author:  lookup.Value.ID,
	})

	return &GetAuthorOutput{
		Body: responses.AuthorPageResponse{
			Author:           mappers.ToAuthorResponse(lookup.Value),
			PostListResponse: mappers.ToPostListResponse(page.Posts, page.Pagination, h.options(ctx)),
		},
	}, nil
}
