// Package core contains the business logic for the WordPress Blog API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: WordPress models (Post, Category, Author, Media) and pagination
// - content: The content gateway that reads the WordPress REST API
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Degradation
//
// The gateway never returns a Go error. A failed remote call is logged and
// produces an empty result whose Err field records the cause, so callers
// render empty listings instead of failing the whole page.
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := content.NewService("https://blog.example.com/wp-json/wp/v2", deps)
//
//	page := svc.ListPosts(ctx, content.PostFilter{Page: 2, PerPage: 9})
//	for _, post := range page.Posts {
//	    fmt.Println(post.Slug)
//	}
//	if page.Pagination != nil && page.Pagination.HasNext {
//	    // link to page 3
//	}
package core
