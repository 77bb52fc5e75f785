package wordpress

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// WordPress-specific errors.
var (
	// ErrConfigInvalidEndpoint indicates the site URL is missing or not absolute.
	ErrConfigInvalidEndpoint = errors.New("wordpress: invalid endpoint")

	// ErrConfigInvalidPerPage indicates a page size outside 1-100.
	ErrConfigInvalidPerPage = errors.New("wordpress: per_page must be between 1 and 100")

	// ErrConfigMissingPassword indicates a Basic auth user without a password.
	ErrConfigMissingPassword = errors.New("wordpress: http.user requires an application password in http.token")

	// ErrUnexpectedPayload indicates a successful response whose body is not
	// a JSON array of objects.
	ErrUnexpectedPayload = errors.New("wordpress: unexpected response payload")
)

// APIError represents a non-success WordPress REST response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wordpress: API error %d %s: %s (URL: %s)", e.StatusCode, e.Code, e.Message, e.URL)
	}
	return fmt.Sprintf("wordpress: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// errorEnvelope is the body WordPress sends with error responses.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// newAPIError builds an APIError from a response and its (possibly empty) body.
func newAPIError(statusCode int, url string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
		URL:        url,
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Code = env.Code
		if env.Message != "" {
			apiErr.Message = env.Message
		}
	}

	return apiErr
}

// IsNotFound checks if the error indicates a missing route or object.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}
	return false
}
