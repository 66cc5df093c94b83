package handlers

import (
	"context"
	"sync"

	"wpblog-api/core/content"
	"wpblog-api/core/domain"
)

// mockContentService is a mock implementation of the content gateway
type mockContentService struct {
	listPostsFunc         func(ctx context.Context, filter content.PostFilter) content.PostPage
	getPostBySlugFunc     func(ctx context.Context, slug string) content.Lookup[domain.Post]
	listCategoriesFunc    func(ctx context.Context) content.List[domain.Category]
	getCategoryBySlugFunc func(ctx context.Context, slug string) content.Lookup[domain.Category]
	listAuthorsFunc       func(ctx context.Context) content.List[domain.Author]
	getAuthorBySlugFunc   func(ctx context.Context, slug string) content.Lookup[domain.Author]
	getRelatedPostsFunc   func(ctx context.Context, postID int, categoryIDs []int, limit int) content.List[domain.Post]

	mu      sync.Mutex
	filters []content.PostFilter
}

func (m *mockContentService) ListPosts(ctx context.Context, filter content.PostFilter) content.PostPage {
	m.mu.Lock()
	m.filters = append(m.filters, filter)
	m.mu.Unlock()
	if m.listPostsFunc != nil {
		return m.listPostsFunc(ctx, filter)
	}
	return content.PostPage{Posts: []domain.Post{}}
}

func (m *mockContentService) GetPostBySlug(ctx context.Context, slug string) content.Lookup[domain.Post] {
	if m.getPostBySlugFunc != nil {
		return m.getPostBySlugFunc(ctx, slug)
	}
	return content.Lookup[domain.Post]{}
}

func (m *mockContentService) ListCategories(ctx context.Context) content.List[domain.Category] {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx)
	}
	return content.List[domain.Category]{Items: []domain.Category{}}
}

func (m *mockContentService) GetCategoryBySlug(ctx context.Context, slug string) content.Lookup[domain.Category] {
	if m.getCategoryBySlugFunc != nil {
		return m.getCategoryBySlugFunc(ctx, slug)
	}
	return content.Lookup[domain.Category]{}
}

func (m *mockContentService) ListAuthors(ctx context.Context) content.List[domain.Author] {
	if m.listAuthorsFunc != nil {
		return m.listAuthorsFunc(ctx)
	}
	return content.List[domain.Author]{Items: []domain.Author{}}
}

func (m *mockContentService) GetAuthorBySlug(ctx context.Context, slug string) content.Lookup[domain.Author] {
	if m.getAuthorBySlugFunc != nil {
		return m.getAuthorBySlugFunc(ctx, slug)
	}
	return content.Lookup[domain.Author]{}
}

func (m *mockContentService) GetRelatedPosts(ctx context.Context, postID int, categoryIDs []int, limit int) content.List[domain.Post] {
	if m.getRelatedPostsFunc != nil {
		return m.getRelatedPostsFunc(ctx, postID, categoryIDs, limit)
	}
	return content.List[domain.Post]{Items: []domain.Post{}}
}

func (m *mockContentService) recordedFilters() []content.PostFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]content.PostFilter(nil), m.filters...)
}
