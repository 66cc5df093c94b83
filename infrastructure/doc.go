// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - http/standard: net/http client for read-only JSON APIs
// - logger/logrus: structured logger backed by sirupsen/logrus
//
// # HTTP Client
//
// One attempt per call; the configured timeout and the caller's context
// bound each request:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://blog.example.com/wp-json/wp/v2/posts")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "debug", Format: "json"})
//	logger.Info("Fetched posts", map[string]interface{}{
//	    "endpoint": "/posts?page=2",
//	    "count":    9,
//	})
package infrastructure
