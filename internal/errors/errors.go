// Package errors provides the error taxonomy for the LoadMove assistant
// client. Every expected remote failure mode maps to exactly one of the
// typed errors here; callers branch with errors.Is or the IsXxx helpers.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrRateLimited        = errors.New("rate limited")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidResponse    = errors.New("invalid response format")
)

// UnauthorizedError means the caller's credentials are invalid or expired.
// Surfaced to the user as a re-authentication prompt.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "unauthorized: access token may have expired"
	}
	return fmt.Sprintf("unauthorized: %s", e.Message)
}

// Is allows comparison with the ErrUnauthorized sentinel
func (e *UnauthorizedError) Is(target error) bool {
	if target == ErrUnauthorized {
		return true
	}
	_, ok := target.(*UnauthorizedError)
	return ok
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// NotFoundError means the referenced session or message does not exist or
// is not visible to the caller.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows comparison with the ErrNotFound sentinel
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	_, ok := target.(*NotFoundError)
	return ok
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// RateLimitError means the service rejected the request for sending too
// many; callers should back off before retrying.
type RateLimitError struct {
	Message    string
	RetryAfter int // seconds, 0 when the service gave no hint
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %ds", e.RetryAfter)
	}
	if e.Message == "" {
		return "rate limited: too many requests"
	}
	return fmt.Sprintf("rate limited: %s", e.Message)
}

// Is allows comparison with the ErrRateLimited sentinel
func (e *RateLimitError) Is(target error) bool {
	if target == ErrRateLimited {
		return true
	}
	_, ok := target.(*RateLimitError)
	return ok
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(message string, retryAfter int) *RateLimitError {
	return &RateLimitError{Message: message, RetryAfter: retryAfter}
}

// ServiceError covers transport failures, timeouts and 5xx-class responses.
// Retryable.
type ServiceError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("service unavailable [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("service unavailable at %s: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("service unavailable at %s: %s", e.Endpoint, e.Message)
}

// Unwrap returns the underlying transport error, if any
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Is allows comparison with the ErrServiceUnavailable sentinel
func (e *ServiceError) Is(target error) bool {
	if target == ErrServiceUnavailable {
		return true
	}
	_, ok := target.(*ServiceError)
	return ok
}

// NewServiceError creates a ServiceError from an HTTP status
func NewServiceError(statusCode int, endpoint, message string) *ServiceError {
	return &ServiceError{StatusCode: statusCode, Endpoint: endpoint, Message: message}
}

// NewTransportError creates a ServiceError wrapping a transport-level
// failure (connection refused, timeout, DNS).
func NewTransportError(endpoint string, cause error) *ServiceError {
	return &ServiceError{Endpoint: endpoint, Cause: cause}
}

// ValidationError means the request was malformed (e.g. empty message
// content). Not retryable without correction.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is allows comparison with the ErrValidation sentinel
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ParseError means the service returned a body the client could not
// decode. Treated as retryable by callers since it usually accompanies a
// degraded service.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}
