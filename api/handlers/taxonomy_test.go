package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"wpblog-api/api/dto/responses"
	"wpblog-api/core/content"
	"wpblog-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaxonomyAPI(t *testing.T, svc *mockContentService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewTaxonomyHandler(svc, testBlog, nil).RegisterRoutes(api)
	return api
}

func TestListCategories(t *testing.T) {
	svc := &mockContentService{
		listCategoriesFunc: func(ctx context.Context) content.List[domain.Category] {
			return content.List[domain.Category]{Items: []domain.Category{
				{ID: 1, Name: "News", Slug: "news", Count: 4},
				{ID: 2, Name: "Tips &amp; Tricks", Slug: "tips", Count: 2, Parent: 1},
			}}
		},
	}
	api := newTaxonomyAPI(t, svc)

	resp := api.Get("/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.CategoriesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Tips & Tricks", body.Categories[1].Name)
	assert.Equal(t, 1, body.Categories[1].Parent)
}

func TestListCategories_Degraded(t *testing.T) {
	svc := &mockContentService{
		listCategoriesFunc: func(ctx context.Context) content.List[domain.Category] {
			return content.List[domain.Category]{Items: []domain.Category{}, Err: errors.New("502")}
		},
	}
	api := newTaxonomyAPI(t, svc)

	resp := api.Get("/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.CategoriesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotNil(t, body.Categories)
	assert.Empty(t, body.Categories)
}

func TestGetCategory(t *testing.T) {
	svc := &mockContentService{
		getCategoryBySlugFunc: func(ctx context.Context, slug string) content.Lookup[domain.Category] {
			return content.Lookup[domain.Category]{Value: &domain.Category{ID: 5, Name: "Go", Slug: slug, Count: 12}}
		},
		listPostsFunc: func(ctx context.Context, filter content.PostFilter) content.PostPage {
			return content.PostPage{
				Posts:      []domain.Post{testPost(1, "a"), testPost(2, "b")},
				Pagination: domain.NewPaginationInfo(12, 2, filter.CurrentPage()),
			}
		},
	}
	api := newTaxonomyAPI(t, svc)

	resp := api.Get("/categories/go?page=2")
	require.Equal(t, http.StatusOK, resp.Code)

	filters := svc.recordedFilters()
	require.Len(t, filters, 1)
	assert.Equal(t, content.PostFilter{Page: 2, PerPage: 9, Category: 5}, filters[0])

	var body responses.CategoryPageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "go", body.Category.Slug)
	assert.Len(t, body.Posts, 2)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 2, body.Pagination.CurrentPage)
}

func TestGetCategory_NotFound(t *testing.T) {
	svc := &mockContentService{}
	api := newTaxonomyAPI(t, svc)

	resp := api.Get("/categories/missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, svc.recordedFilters(), "posts are not listed for a missing category")
}

func TestListAuthors(t *testing.T) {
	svc := &mockContentService{
		listAuthorsFunc: func(ctx context.Context) content.List[domain.Author] {
			return content.List[domain.Author]{Items: []domain.Author{
				{ID: 7, Name: "Jane", Slug: "jane", AvatarURLs: map[string]string{"96": "https://img/96"}},
			}}
		},
	}
	api := newTaxonomyAPI(t, svc)

	resp := api.Get("/authors")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.AuthorsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Authors, 1)
	assert.Equal(t, "https://img/96", body.Authors[0].Avatar)
}

func TestGetAuthor(t *testing.T) {
	svc := &mockContentService{
		getAuthorBySlugFunc: func(ctx context.Context, slug string) content.Lookup[domain.Author] {
			return content.Lookup[domain.Author]{Value: &domain.Author{ID: 7, Name: "Jane", Slug: slug}}
		},
	}
	api := newTaxonomyAPI(t, svc)

	resp := api.Get("/authors/jane")
	require.Equal(t, http.StatusOK, resp.Code)

	filters := svc.recordedFilters()
	require.Len(t, filters, 1)
	assert.Equal(t, content.PostFilter{Page: 1, PerPage: 9, Author: 7}, filters[0])

	var body responses.AuthorPageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Jane", body.Author.Name)
	assert.NotNil(t, body.Posts)
	assert.Nil(t, body.Pagination)
}

func TestGetAuthor_NotFound(t *testing.T) {
	api := newTaxonomyAPI(t, &mockContentService{})

	resp := api.Get("/authors/nobody")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "author not found: nobody")
}
