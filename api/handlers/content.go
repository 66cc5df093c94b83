// ABOUTME: Shared plumbing for the blog content handlers
// ABOUTME: Declares the gateway contract and turns settings and flags into view options

package handlers

import (
	"context"

	"wpblog-api/api/dto/mappers"
	"wpblog-api/core/content"
	"wpblog-api/core/domain"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"
)

// ContentService defines the methods needed from the content gateway.
// Results never carry a Go error; degraded results are rendered as empty.
type ContentService interface {
	ListPosts(ctx context.Context, filter content.PostFilter) content.PostPage
	GetPostBySlug(ctx context.Context, slug string) content.Lookup[domain.Post]
	ListCategories(ctx context.Context) content.List[domain.Category]
	GetCategoryBySlug(ctx context.Context, slug string) content.Lookup[domain.Category]
	ListAuthors(ctx context.Context) content.List[domain.Author]
	GetAuthorBySlug(ctx context.Context, slug string) content.Lookup[domain.Author]
	GetRelatedPosts(ctx context.Context, postID int, categoryIDs []int, limit int) content.List[domain.Post]
}

// presenter holds what every handler needs to shape responses
type presenter struct {
	blog  config.BlogConfig
	flags featureflags.Manager
}

func newPresenter(blog config.BlogConfig, flags featureflags.Manager) presenter {
	if flags == nil {
		defaults := make(map[featureflags.FeatureFlag]bool, len(featureflags.Defaults))
		for flag, enabled := range featureflags.Defaults {
			defaults[flag] = enabled
		}
		flags = featureflags.NewStaticManager(defaults)
	}
	return presenter{blog: blog, flags: flags}
}

func (p presenter) options(ctx context.Context) mappers.Options {
	return mappers.Options{
		ExcerptLength:  p.blog.ExcerptLength,
		WordsPerMinute: p.blog.WordsPerMinute,
		ReadingTime:    p.flags.IsEnabled(ctx, featureflags.ReadingTime),
	}
}

// perPage resolves the page size for a listing, 0 meaning the configured default
func (p presenter) perPage(requested int) int {
	if requested > 0 {
		return requested
	}
	return p.blog.PostsPerPage
}
