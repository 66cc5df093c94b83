// ABOUTME: Content gateway translating blog queries into WordPress REST calls
// ABOUTME: Never fails the caller; remote errors degrade to empty, well-typed results

package content

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"wpblog-api/core/domain"
	"wpblog-api/core/interfaces"
)

const (
	// MaxPerPage is the largest page WordPress serves; taxonomy listings use it
	MaxPerPage = 100

	// DefaultRelatedLimit is used when GetRelatedPosts is given no positive limit
	DefaultRelatedLimit = 3
)

// Service is a stateless, read-only facade over the WordPress REST API.
// It is safe for concurrent use.
type Service struct {
	baseURL string
	deps    interfaces.Dependencies
	logger  interfaces.Logger
}

// NewService creates a gateway for the API rooted at baseURL
// (for example "https://blog.example.com/wp-json/wp/v2").
func NewService(baseURL string, deps interfaces.Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		deps:    deps,
		logger:  logger,
	}
}

// ListPosts returns a page of posts with author, featured media and terms embedded
func (s *Service) ListPosts(ctx context.Context, filter PostFilter) PostPage {
	posts, t, err := fetchCollection[domain.Post](ctx, s, "/posts", filter.values())
	if err != nil {
		return emptyPostPage(err)
	}

	page := PostPage{Posts: posts}
	if t != nil {
		page.Pagination = domain.NewPaginationInfo(t.total, t.totalPages, filter.CurrentPage())
	}
	return page
}

// GetPostBySlug looks up a single post by its exact slug
func (s *Service) GetPostBySlug(ctx context.Context, slug string) Lookup[domain.Post] {
	return lookupBySlug[domain.Post](ctx, s, "/posts", slug, true)
}

// ListCategories returns up to MaxPerPage categories
func (s *Service) ListCategories(ctx context.Context) List[domain.Category] {
	return listAll[domain.Category](ctx, s, "/categories")
}

// GetCategoryBySlug looks up a single category by its exact slug
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) Lookup[domain.Category] {
	return lookupBySlug[domain.Category](ctx, s, "/categories", slug, false)
}

// ListAuthors returns up to MaxPerPage authors
func (s *Service) ListAuthors(ctx context.Context) List[domain.Author] {
	return listAll[domain.Author](ctx, s, "/users")
}

// GetAuthorBySlug looks up a single author by its exact slug
func (s *Service) GetAuthorBySlug(ctx context.Context, slug string) Lookup[domain.Author] {
	return lookupBySlug[domain.Author](ctx, s, "/users", slug, false)
}

// GetRelatedPosts returns up to limit posts sharing any of categoryIDs,
// excluding postID. No request is made when categoryIDs is empty.
func (s *Service) GetRelatedPosts(ctx context.Context, postID int, categoryIDs []int, limit int) List[domain.Post] {
	if len(categoryIDs) == 0 {
		return emptyList[domain.Post](nil)
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	query := url.Values{}
	query.Set("_embed", "true")
	query.Set("categories", joinIDs(categoryIDs))
	query.Set("per_page", strconv.Itoa(limit))
	if postID > 0 {
		query.Set("exclude", strconv.Itoa(postID))
	}

	posts, _, err := fetchCollection[domain.Post](ctx, s, "/posts", query)
	if err != nil {
		return emptyList[domain.Post](err)
	}
	return List[domain.Post]{Items: posts}
}

func listAll[T any](ctx context.Context, s *Service, path string) List[T] {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(MaxPerPage))

	items, _, err := fetchCollection[T](ctx, s, path, query)
	if err != nil {
		return emptyList[T](err)
	}
	return List[T]{Items: items}
}

// lookupBySlug returns the first entity matching slug. An empty slug matches
// nothing: WordPress ignores an empty slug filter and would return the whole collection.
func lookupBySlug[T any](ctx context.Context, s *Service, path, slug string, embed bool) Lookup[T] {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Lookup[T]{}
	}

	query := url.Values{}
	query.Set("slug", slug)
	if embed {
		query.Set("_embed", "true")
	}

	items, _, err := fetchCollection[T](ctx, s, path, query)
	if err != nil {
		return Lookup[T]{Err: err}
	}
	if len(items) == 0 {
		return Lookup[T]{}
	}
	return Lookup[T]{Value: &items[0]}
}
