// Package response classifies raw HTTP responses into outcomes.
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Raw is a completed HTTP exchange as seen by the classifier.
type Raw struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// URL is the final request URL, after redirects.
	URL *url.URL
	// Redirected reports whether the transport followed a redirect.
	Redirected bool
}

// Classifier turns raw responses into outcomes.
type Classifier struct {
	// TolerateEmptySuccessBody reports a 2xx whose body cannot be parsed as
	// the generic {"message":"Success!"} payload. When false the parse
	// error text is reported instead. Either way the outcome is a success.
	TolerateEmptySuccessBody bool
}

// New returns a classifier with the default policies.
func New() *Classifier {
	return &Classifier{TolerateEmptySuccessBody: true}
}

var defaultClassifier = New()

// Classify classifies resp with the default classifier.
func Classify(resp *http.Response) backoffice.Outcome {
	return defaultClassifier.ClassifyHTTP(resp)
}

// ClassifyHTTP reads and closes the body of resp and classifies it. A read
// failure on a 2xx is handled like an unparsable body; on a failure status
// the status alone decides the message.
func (c *Classifier) ClassifyHTTP(resp *http.Response) backoffice.Outcome {
	raw := Raw{StatusCode: resp.StatusCode, Header: resp.Header}

	if resp.Body != nil {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		raw.Body = body
	}

	if resp.Request != nil {
		raw.URL = resp.Request.URL
		raw.Redirected = resp.Request.Response != nil
	}

	return c.Classify(raw)
}

// Classify decides success or failure for raw and extracts the payload or
// the failure message.
func (c *Classifier) Classify(raw Raw) backoffice.Outcome {
	if raw.StatusCode < http.StatusOK || raw.StatusCode >= http.StatusMultipleChoices {
		return Failure(raw.StatusCode, raw.Body)
	}

	return c.success(raw)
}

func (c *Classifier) success(raw Raw) backoffice.Outcome {
	if raw.StatusCode == http.StatusCreated {
		return backoffice.SucceededWith(map[string]interface{}{"location": nullable(raw.Header.Get("Location"))})
	}

	if raw.StatusCode == http.StatusOK && raw.Redirected {
		var code string
		if raw.URL != nil {
			code = raw.URL.Query().Get("code")
		}

		return backoffice.SucceededWith(map[string]interface{}{"code": nullable(code)})
	}

	if isPlainText(raw.Header.Get("Content-Type")) {
		return backoffice.SucceededWith(string(raw.Body))
	}

	if !gjson.ValidBytes(raw.Body) {
		return c.unparsable(raw.Body)
	}

	parsed := gjson.ParseBytes(raw.Body)
	if data := parsed.Get("data"); truthy(data) {
		return backoffice.Succeeded(json.RawMessage(data.Raw))
	}

	return backoffice.Succeeded(json.RawMessage(parsed.Raw))
}

func (c *Classifier) unparsable(body []byte) backoffice.Outcome {
	if c.TolerateEmptySuccessBody {
		return backoffice.SucceededWith(map[string]string{"message": constants.MessageSuccess})
	}

	var discard interface{}

	err := json.Unmarshal(body, &discard)
	if err == nil {
		err = fmt.Errorf("unexpected body %q", body)
	}

	return backoffice.SucceededWith(map[string]string{"message": err.Error()})
}

// Failure classifies a non-2xx response. A missing status counts as 500.
func Failure(status int, body []byte) backoffice.Outcome {
	if status == 0 {
		status = http.StatusInternalServerError
	}

	parsed := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !parsed.IsObject() {
		return backoffice.Failed(status, StatusMessage(status))
	}

	if hasStructuredError(status, parsed) {
		return structuredFailure(status, parsed)
	}

	if message := parsed.Get("message"); message.Type == gjson.String && message.String() != "" {
		return backoffice.Failed(status, message.String())
	}

	return backoffice.Failed(status, StatusMessage(status))
}

// ErrorMessage derives the message shown to the user for a failed call:
// the body's message field when present, otherwise the status lookup.
func ErrorMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		if message := gjson.GetBytes(body, "message"); message.Type == gjson.String && message.String() != "" {
			return message.String()
		}
	}

	return StatusMessage(status)
}

func hasStructuredError(status int, body gjson.Result) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
	default:
		return false
	}

	return body.Get("errorMessage").Exists() || body.Get("message").Exists() || body.Get("messages").Exists()
}

func structuredFailure(status int, body gjson.Result) backoffice.Outcome {
	code := status
	if errorCode := body.Get("errorCode"); errorCode.Type == gjson.Number {
		code = int(errorCode.Int())
	}

	marker := firstString(body, "errorMessage", "messages.0.code")

	var message string
	if marker == constants.CustomerSyncErrors {
		message = firstString(body, "errorMessage", "messages.0.argsMap.messages")
	} else {
		message = firstString(body, "errorMessage", "messages.0.message")
	}

	return backoffice.Failed(code, message)
}

// firstString returns the first path that resolves to a non-null value.
func firstString(body gjson.Result, paths ...string) string {
	for _, path := range paths {
		if value := body.Get(path); value.Exists() && value.Type != gjson.Null {
			return value.String()
		}
	}

	return ""
}

func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return value.Float() != 0
	case gjson.String:
		return value.String() != ""
	default:
		return value.Exists()
	}
}

func isPlainText(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "text/plain")
	}

	return mediaType == "text/plain"
}

func nullable(value string) interface{} {
	if value == "" {
		return nil
	}

	return value
}
