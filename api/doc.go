// Package api provides the HTTP API layer for the WordPress Blog API.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware and route registration
// - handlers/: HTTP request handlers
// - dto/: Response DTOs and mappers from the WordPress domain
// - middleware/: Request logging and per-IP rate limiting
//
// # Routes
//
//	GET /home                 latest posts and top categories
//	GET /posts                paginated posts (page, per_page, category, author, search)
//	GET /posts/{slug}         one post with related posts (format=html|markdown)
//	GET /categories           all categories
//	GET /categories/{slug}    a category and a page of its posts
//	GET /authors              all authors
//	GET /authors/{slug}       an author and a page of their posts
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(100, time.Minute)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: limiter,
//	})
//	api.RegisterHandlers(humaAPI, contentService, cfg.Blog, flags, logger)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Remote failures never surface as errors: listings come back empty with a
// 200 status. A slug that resolves to nothing is a 404 with an RFC 7807 body:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "post not found: hello-world"
//	}
package api
