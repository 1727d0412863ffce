package backoffice

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FailureError is a classified protocol failure: a non-2xx response
// reduced to its status code and a displayable message.
type FailureError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *FailureError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Code)
}

// HTTPError is raised by GET calls that completed with a status other than 200.
type HTTPError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Code + ": " + e.Message
}

// ValidationError reports form fields that failed client-side checks.
type ValidationError struct {
	Field   string   `json:"field,omitempty"  yaml:"field,omitempty"`
	Fields  []string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Message string   `json:"message"          yaml:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	case len(e.Fields) > 0:
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
	default:
		return e.Message
	}
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrTransport           = errors.New("transport error")
	ErrMissingPathArg      = errors.New("missing path argument")
	ErrChannelClosed       = errors.New("notification channel is closed")
	ErrUnexpectedCount     = errors.New("unexpected count response")
	ErrEmptyID             = errors.New("server did not return a resource id")
)

// StatusCode extracts the HTTP status carried by err, or 0 when there is none.
func StatusCode(err error) int {
	failure := &FailureError{}
	if errors.As(err, &failure) {
		return failure.Code
	}

	return 0
}

// IsNotFound checks if the error is a not found failure.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized failure.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsValidation checks if the error came from client-side form validation.
func IsValidation(err error) bool {
	validation := &ValidationError{}

	return errors.As(err, &validation)
}

// Message returns the user facing message of err. Failures and validation
// errors yield their message; anything else yields err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}

	failure := &FailureError{}
	if errors.As(err, &failure) {
		return failure.Message
	}

	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}

	validation := &ValidationError{}
	if errors.As(err, &validation) {
		return validation.Error()
	}

	return err.Error()
}
