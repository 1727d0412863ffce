package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// newTestClient starts handler behind an httptest server and returns a
// client rooted at its /api path.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(context.Background(), &backoffice.Config{APIEndpoint: server.URL + "/api"})
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client
}

// writeJSON answers with status and, when body is not nil, its JSON encoding.
func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	if body != nil {
		writer.Header().Set("Content-Type", "application/json")
	}

	writer.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(writer).Encode(body)
	}
}

// expectRequest asserts method and path, or fails when no request was
// expected at all.
func expectRequest(t *testing.T, request *http.Request, method, path string) {
	t.Helper()

	if path == "" {
		assert.Fail(t, "unexpected request", "%s %s", request.Method, request.URL.Path)

		return
	}

	assert.Equal(t, method, request.Method)
	assert.Equal(t, path, request.URL.Path)
}

// TestCreateOperation represents a generic create operation test case.
// An empty ExpectedPath means the call must fail before any request.
type TestCreateOperation[TRequest any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Location     string
	Response     interface{}
	WantID       string
	WantErr      bool
	ErrMessage   string
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	Check        func(t *testing.T, result *TResponse)
	WantErr      bool
	ErrMessage   string
}

// TestUpdateOperation represents a generic update operation test case.
type TestUpdateOperation[TRequest any] struct {
	Name         string
	ID           string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantDeleted  bool
	WantErr      bool
	ErrMessage   string
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest any](
	t *testing.T,
	tests []TestCreateOperation[TRequest],
	createFunc func(*Client) func(context.Context, *TRequest) (string, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				expectRequest(t, request, http.MethodPost, testCase.ExpectedPath)

				var sent map[string]interface{}
				assert.NoError(t, json.NewDecoder(request.Body).Decode(&sent))

				if testCase.Location != "" {
					writer.Header().Set("Location", testCase.Location)
				}

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			})

			id, err := createFunc(client)(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.WantID, id)
			}
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				expectRequest(t, request, http.MethodGet, testCase.ExpectedPath)
				writeJSON(writer, testCase.StatusCode, testCase.Response)
			})

			result, err := getFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)

				if testCase.Check != nil {
					testCase.Check(t, result)
				}
			}
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[TRequest any](
	t *testing.T,
	tests []TestUpdateOperation[TRequest],
	updateFunc func(*Client) func(context.Context, string, *TRequest) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				expectRequest(t, request, http.MethodPut, testCase.ExpectedPath)
				writeJSON(writer, testCase.StatusCode, testCase.Response)
			})

			err := updateFunc(client)(context.Background(), testCase.ID, testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) (bool, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				expectRequest(t, request, http.MethodDelete, testCase.ExpectedPath)
				writeJSON(writer, testCase.StatusCode, testCase.Response)
			})

			deleted, err := deleteFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, testCase.WantDeleted, deleted)
		})
	}
}
