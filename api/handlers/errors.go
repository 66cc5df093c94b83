// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"wpblog-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Remote failures never reach handlers; the gateway degrades them to empty results.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// notFound reports a direct lookup that produced nothing
func notFound(resource, slug string) error {
	return toHumaError(&errors.NotFoundError{Resource: resource, ID: slug})
}
