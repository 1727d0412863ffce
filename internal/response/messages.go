package response

import (
	"net/http"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

var statusMessages = map[int]string{
	0:                                  "Unable to reach the server",
	http.StatusBadRequest:              "Bad request",
	http.StatusUnauthorized:            "Unauthorized",
	http.StatusForbidden:               "Forbidden",
	http.StatusNotFound:                "Not found",
	http.StatusMethodNotAllowed:        "Method not allowed",
	http.StatusRequestTimeout:          "Request timeout",
	http.StatusConflict:                "Conflict",
	http.StatusRequestEntityTooLarge:   "Request too large",
	http.StatusUnprocessableEntity:     "Unprocessable entity",
	http.StatusTooManyRequests:         "Too many requests",
	http.StatusInternalServerError:     "Server error",
	http.StatusNotImplemented:          "Not implemented",
	http.StatusBadGateway:              "Bad gateway",
	http.StatusServiceUnavailable:      "Service unavailable",
	http.StatusGatewayTimeout:          "Gateway timeout",
	http.StatusHTTPVersionNotSupported: "HTTP version not supported",
}

// StatusMessage returns the display message for an HTTP status code.
// Unknown codes yield the generic failure message.
func StatusMessage(code int) string {
	if message, ok := statusMessages[code]; ok {
		return message
	}

	return constants.MessageSomethingWentWrong
}

// AuthRequired is the failure reported when a call needs a session. The
// server reports it with code 500.
func AuthRequired() backoffice.Outcome {
	return backoffice.Failed(http.StatusInternalServerError, constants.MessageLoginToContinue)
}

// AllFieldsRequired is the failure reported when a form misses required fields.
func AllFieldsRequired() backoffice.Outcome {
	return backoffice.Failed(0, constants.MessageAllFieldsMandatory)
}

// ServerDown is the failure reported when no response arrived at all.
func ServerDown(err error) backoffice.Outcome {
	if err == nil {
		return backoffice.Failed(0, StatusMessage(0))
	}

	return backoffice.Failed(0, err.Error())
}
