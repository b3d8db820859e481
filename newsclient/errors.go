// ABOUTME: Error types and handling for the news content API client
// ABOUTME: Separates server problem responses from local network and decoding failures

package newsclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of a local client error
type ErrorType string

const (
	// ErrorTypeValidation indicates bad arguments caught before any request
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates the server could not be reached
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParsing indicates an unreadable server response
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeConfiguration indicates an invalid client option
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error raised by the client itself
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// APIError is a non-2xx answer from the server, decoded from its problem body
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("news api: %d %s: %s", e.StatusCode, e.Title, e.Detail)
	}
	return fmt.Sprintf("news api: %d %s", e.StatusCode, e.Title)
}

// IsValidationError checks if an error is a local validation error or a 400 from the server
func IsValidationError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrorTypeValidation
	}
	return statusOf(err) == http.StatusBadRequest
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeNetwork
}

// IsRateLimited reports a 429 from the server
func IsRateLimited(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests
}

// IsRetrievalError reports that the server could not fetch the requested page
func IsRetrievalError(err error) bool {
	return statusOf(err) == http.StatusInternalServerError
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
