// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"newsfeed-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// retrieveFailedMessage is the detail returned when an upstream page cannot be read
const retrieveFailedMessage = "Failed to retrieve content"

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		return huma.Error400BadRequest(validationErr.Message)
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsFetch(err), errors.IsExternalAPI(err):
		// Upstream failures surface as a generic 500; details stay in the logs.
		return huma.Error500InternalServerError(retrieveFailedMessage)
	}

	return huma.Error500InternalServerError("Internal server error")
}

// featureDisabled is returned by endpoints switched off through feature flags
func featureDisabled(name string) error {
	return huma.Error404NotFound(name + " is disabled")
}
