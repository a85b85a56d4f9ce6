// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"aipulse-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		// Upstream relay failures never reach the client as hard errors in
		// the pulse flow, but keep the mapping for completeness.
		return huma.Error503ServiceUnavailable("Upstream service error", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
