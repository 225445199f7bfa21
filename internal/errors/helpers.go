package errors

import "errors"

// IsUnauthorized checks if an error is an UnauthorizedError.
func IsUnauthorized(err error) bool {
	return err != nil && errors.Is(err, ErrUnauthorized)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsRateLimited checks if an error is a RateLimitError.
func IsRateLimited(err error) bool {
	return err != nil && errors.Is(err, ErrRateLimited)
}

// IsServiceUnavailable checks if an error is a ServiceError.
func IsServiceUnavailable(err error) bool {
	return err != nil && errors.Is(err, ErrServiceUnavailable)
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	return err != nil && errors.Is(err, ErrValidation)
}

// IsRetryable reports whether retrying the same request may succeed
// without the caller changing anything.
func IsRetryable(err error) bool {
	return IsServiceUnavailable(err) || IsRateLimited(err)
}

// GetHTTPStatus extracts the HTTP status from a ServiceError, or 0.
func GetHTTPStatus(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// FromStatusCode maps an HTTP response status to the taxonomy. The zero
// return means the status is not an error (2xx).
func FromStatusCode(status int, endpoint, body string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == 400 || status == 422:
		return NewValidationError("", firstLine(body))
	case status == 401 || status == 403:
		return NewUnauthorizedError(firstLine(body))
	case status == 404:
		return NewNotFoundError("resource", "")
	case status == 429:
		return NewRateLimitError(firstLine(body), 0)
	default:
		return NewServiceError(status, endpoint, firstLine(body))
	}
}

// firstLine trims a response body down to something safe to embed in an
// error message.
func firstLine(body string) string {
	const max = 200
	for i := 0; i < len(body); i++ {
		if body[i] == '\n' {
			body = body[:i]
			break
		}
	}
	if len(body) > max {
		body = body[:max]
	}
	return body
}
