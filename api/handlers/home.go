// ABOUTME: Home handler for the Huma API
// ABOUTME: Fetches latest posts and top categories concurrently for the landing page

package handlers

import (
	"context"
	"net/http"

	"wpblog-api/api/dto/mappers"
	"wpblog-api/api/dto/responses"
	"wpblog-api/core/content"
	"wpblog-api/core/domain"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"
)

// HomeHandler serves the landing page data
type HomeHandler struct {
	presenter
	content ContentService
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(contentService ContentService, blog config.BlogConfig, flags featureflags.Manager) *HomeHandler {
	return &HomeHandler{
		presenter: newPresenter(blog, flags),
		content:   contentService,
	}
}

// RegisterRoutes registers the home route
func (h *HomeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHome",
		Method:      http.MethodGet,
		Path:        "/home",
		Summary:     "Landing page content",
		Description: "Returns the latest posts and the top categories",
		Tags:        []string{"Home"},
	}, h.GetHome)
}

// GetHomeOutput defines the output for the GetHome operation
type GetHomeOutput struct {
	Body responses.HomeResponse
}

// GetHome handles the GET /home endpoint
func (h *HomeHandler) GetHome(ctx context.Context, input *struct{}) (*GetHomeOutput, error) {
	var (
		page       content.PostPage
		categories content.List[domain.Category]
	)

	// Both calls degrade instead of failing, so Wait only joins them
	var g errgroup.Group
	g.Go(func() error {
		page = h.content.ListPosts(ctx, content.PostFilter{PerPage: h.blog.HomePosts})
		return nil
	})
	g.Go(func() error {
		categories = h.content.ListCategories(ctx)
		return nil
	})
	_ = g.Wait()

	top := categories.Items
	if n := h.blog.TopCategories; n >= 0 && n < len(top) {
		top = top[:n]
	}

	return &GetHomeOutput{
		Body: responses.HomeResponse{
			Posts:      mappers.ToPostSummaries(page.Posts, h.options(ctx)),
			Categories: mappers.ToCategoryResponses(top),
		},
	}, nil
}
