// Package rest issues templated REST calls against the back-office API.
//
// Every method renders its URI template first; a template whose
// placeholders are not all supplied fails before any request is made. The
// interceptor chain of the underlying transport observes every call, so
// this package never touches the loader or the notification channel.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	officehttp "github.com/ashishkumar1990/laywer-client/internal/http"
	"github.com/ashishkumar1990/laywer-client/internal/logging"
	"github.com/ashishkumar1990/laywer-client/internal/route"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Client is the URI templating REST client.
type Client struct {
	http   *officehttp.Client
	logger backoffice.Logger
}

// PostResult is what a POST resolves to: the new resource id for 201
// responses, the payload for 200 responses, and nothing otherwise.
type PostResult struct {
	ID   string
	Body json.RawMessage
}

// New creates a client on top of transport. logger may be nil.
func New(transport *officehttp.Client, logger backoffice.Logger) *Client {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Client{http: transport, logger: logger}
}

// Get fetches template. A 200 resolves to the classified payload, with any
// data envelope removed. Other 2xx statuses fail with a
// *backoffice.HTTPError; failure statuses and transport errors propagate.
func (c *Client) Get(ctx context.Context, template string, pathArgs map[string]string, query url.Values) (json.RawMessage, error) {
	uri, err := route.Render(template, pathArgs)
	if err != nil {
		return nil, err
	}

	c.logCall(http.MethodGet, uri, query, nil)

	resp, err := c.http.Get(ctx, uri, query)
	if err != nil {
		c.logFailure(http.MethodGet, uri, resp, err)

		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &backoffice.HTTPError{
			Code:    constants.HTTPGetErrorCode,
			Message: fmt.Sprintf("Http GET [%s] failed with %d", uri, resp.StatusCode),
		}
	}

	return resp.Outcome.Data, nil
}

// Post creates a resource. A 201 resolves to the id found after the last
// "/" of the Location header, a 200 to the payload.
func (c *Client) Post(ctx context.Context, template string, pathArgs map[string]string, body interface{}, query url.Values) (*PostResult, error) {
	uri, err := route.Render(template, pathArgs)
	if err != nil {
		return nil, err
	}

	c.logCall(http.MethodPost, uri, query, body)

	resp, err := c.http.Do(ctx, &officehttp.Request{
		Method: http.MethodPost,
		Path:   uri,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		return &PostResult{ID: idFromLocation(resp.Headers.Get("Location"))}, nil
	case http.StatusOK:
		return &PostResult{Body: resp.Outcome.Data}, nil
	default:
		return &PostResult{}, nil
	}
}

// Put replaces a resource and returns the raw response. Failures are
// logged with the response body and returned.
func (c *Client) Put(ctx context.Context, template string, pathArgs map[string]string, body interface{}, query url.Values) (*officehttp.Response, error) {
	uri, err := route.Render(template, pathArgs)
	if err != nil {
		return nil, err
	}

	c.logCall(http.MethodPut, uri, query, body)

	resp, err := c.http.Do(ctx, &officehttp.Request{
		Method: http.MethodPut,
		Path:   uri,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		c.logFailure(http.MethodPut, uri, resp, err)

		return resp, err
	}

	return resp, nil
}

// Delete removes a resource. A 204 resolves to "deleted", any other 2xx to
// the empty string. body may be nil.
func (c *Client) Delete(ctx context.Context, template string, pathArgs map[string]string, body interface{}, query url.Values) (string, error) {
	uri, err := route.Render(template, pathArgs)
	if err != nil {
		return "", err
	}

	c.logCall(http.MethodDelete, uri, query, body)

	resp, err := c.http.Do(ctx, &officehttp.Request{
		Method: http.MethodDelete,
		Path:   uri,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		c.logFailure(http.MethodDelete, uri, resp, err)

		return "", err
	}

	if resp.StatusCode == http.StatusNoContent {
		return constants.DeletedToken, nil
	}

	return "", nil
}

func (c *Client) logCall(method, uri string, query url.Values, body interface{}) {
	fields := map[string]interface{}{}
	if len(query) > 0 {
		fields["query"] = query.Encode()
	}

	if body != nil {
		encoded, err := json.Marshal(body)
		if err == nil {
			fields["body"] = string(encoded)
		}
	}

	c.logger.Debug(method+" "+uri, fields)
}

func (c *Client) logFailure(method, uri string, resp *officehttp.Response, err error) {
	fields := map[string]interface{}{
		"method": method,
		"uri":    uri,
		"error":  err.Error(),
	}

	if resp != nil {
		fields["status_code"] = resp.StatusCode
		fields["body"] = string(resp.Body)
	}

	c.logger.Error("Request failed", fields)
}

func idFromLocation(location string) string {
	index := strings.LastIndex(location, "/")
	if index == -1 {
		return ""
	}

	return location[index+1:]
}
