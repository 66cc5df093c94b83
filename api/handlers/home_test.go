package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"wpblog-api/api/dto/responses"
	"wpblog-api/core/content"
	"wpblog-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHome(t *testing.T) {
	svc := &mockContentService{
		listPostsFunc: func(ctx context.Context, filter content.PostFilter) content.PostPage {
			return content.PostPage{Posts: []domain.Post{testPost(1, "latest")}}
		},
		listCategoriesFunc: func(ctx context.Context) content.List[domain.Category] {
			return content.List[domain.Category]{Items: []domain.Category{
				{ID: 1, Slug: "a"}, {ID: 2, Slug: "b"}, {ID: 3, Slug: "c"},
			}}
		},
	}
	_, api := humatest.New(t)
	NewHomeHandler(svc, testBlog, nil).RegisterRoutes(api)

	resp := api.Get("/home")
	require.Equal(t, http.StatusOK, resp.Code)

	filters := svc.recordedFilters()
	require.Len(t, filters, 1)
	assert.Equal(t, content.PostFilter{PerPage: 6}, filters[0])

	var body responses.HomeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "latest", body.Posts[0].Slug)
	require.Len(t, body.Categories, 2, "categories are cut to the configured top count")
	assert.Equal(t, "a", body.Categories[0].Slug)
	assert.Equal(t, "b", body.Categories[1].Slug)
}

func TestGetHome_AllDegraded(t *testing.T) {
	_, api := humatest.New(t)
	NewHomeHandler(&mockContentService{}, testBlog, nil).RegisterRoutes(api)

	resp := api.Get("/home")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.HomeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotNil(t, body.Posts)
	assert.Empty(t, body.Posts)
	assert.NotNil(t, body.Categories)
	assert.Empty(t, body.Categories)
}
