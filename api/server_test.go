package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wpblog-api/api/middleware"
	"wpblog-api/core/content"
	"wpblog-api/core/interfaces"
	"wpblog-api/pkg/config"
	"wpblog-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)

	info := api.OpenAPI().Info
	assert.Equal(t, "WordPress Blog API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", rec.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/docs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodOptions, "/openapi.json", nil)
	req.Header.Set("Origin", "https://blog.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPIWithMiddleware_AppliesMiddleware(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	_, router := NewAPIWithMiddleware(APIConfig{
		Logger:      interfaces.NopLogger{},
		RateLimiter: limiter,
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewAPIWithMiddleware_RateLimitDisabled(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestNewAPIWithMiddleware_CompressesResponses(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), apiTitle)
}

func TestNewAPIWithMiddleware_PlainWithoutAcceptEncoding(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Body.String(), apiTitle)
}

func TestRegisterHandlers(t *testing.T) {
	api, _ := NewAPI()
	svc := content.NewService("http://127.0.0.1:1/wp-json/wp/v2", interfaces.Dependencies{})

	RegisterHandlers(api, svc, config.BlogConfig{PostsPerPage: 9}, featureflags.NewStaticManager(nil), nil)

	paths := api.OpenAPI().Paths
	for _, path := range []string{"/home", "/posts", "/posts/{slug}", "/categories", "/categories/{slug}", "/authors", "/authors/{slug}"} {
		assert.Contains(t, paths, path)
	}
}

func TestRegisterHandlers_DegradesWithoutHTTPClient(t *testing.T) {
	api, router := NewAPI()
	svc := content.NewService("http://127.0.0.1:1/wp-json/wp/v2", interfaces.Dependencies{})
	RegisterHandlers(api, svc, config.BlogConfig{PostsPerPage: 9, HomePosts: 6, TopCategories: 6}, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/home", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/posts/hello", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
