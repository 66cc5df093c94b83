// ABOUTME: Low-level WordPress REST fetching for the content gateway
// ABOUTME: Decodes collection responses and reads the pagination total headers

package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	coreerrors "wpblog-api/core/errors"
	"wpblog-api/core/interfaces"
	"wpblog-api/pkg/utils/parse"
)

const (
	apiName = "wordpress"

	// Headers WordPress sets on every collection response
	headerTotal      = "X-WP-Total"
	headerTotalPages = "X-WP-TotalPages"
)

// totals holds the collection size reported by WordPress
type totals struct {
	total      int
	totalPages int
}

// readTotals returns nil unless both headers are present and numeric
func readTotals(header func(string) string) *totals {
	total, ok := parse.Int(header(headerTotal))
	if !ok {
		return nil
	}
	totalPages, ok := parse.Int(header(headerTotalPages))
	if !ok {
		return nil
	}
	return &totals{total: total, totalPages: totalPages}
}

// fetchCollection GETs a collection endpoint and decodes its JSON array.
// Any failure is logged here and returned; callers degrade it to an empty result.
func fetchCollection[T any](ctx context.Context, s *Service, path string, query url.Values) ([]T, *totals, error) {
	endpoint := path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	items, t, err := doFetch[T](ctx, s, endpoint)
	if err != nil {
		fields := map[string]interface{}{
			"endpoint": endpoint,
			"error":    err.Error(),
		}
		var apiErr *coreerrors.ExternalAPIError
		if errors.As(err, &apiErr) {
			fields["status"] = apiErr.StatusCode
		}
		if id := interfaces.RequestIDFromContext(ctx); id != "" {
			fields["request_id"] = id
		}
		s.logger.Error("WordPress API error", fields)
		return nil, nil, err
	}

	s.logger.Debug("WordPress API response", map[string]interface{}{
		"endpoint": endpoint,
		"count":    len(items),
	})
	return items, t, nil
}

func doFetch[T any](ctx context.Context, s *Service, endpoint string) ([]T, *totals, error) {
	if s.deps.HTTPClient == nil {
		return nil, nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.baseURL+endpoint)
	if err != nil {
		return nil, nil, coreerrors.WrapError(err, "request failed")
	}
	if resp == nil {
		return nil, nil, errors.New("request failed: no response")
	}
	defer resp.Body().Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, nil, &coreerrors.ExternalAPIError{
			StatusCode: code,
			Message:    http.StatusText(code),
			API:        apiName,
		}
	}

	var items []T
	if err := json.NewDecoder(resp.Body()).Decode(&items); err != nil {
		return nil, nil, coreerrors.WrapError(err, "malformed response body")
	}
	if items == nil {
		items = []T{}
	}

	return items, readTotals(resp.Header), nil
}
