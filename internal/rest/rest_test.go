package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	officehttp "github.com/ashishkumar1990/laywer-client/internal/http"
	"github.com/ashishkumar1990/laywer-client/internal/loader"
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []backoffice.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification backoffice.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = append(n.notifications, notification)

	return nil
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, level+" "+msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.add("error", msg) }

func newClient(t *testing.T, handler http.HandlerFunc) (*rest.Client, *loader.Loader, *recordingNotifier) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	notifier := &recordingNotifier{}
	l := loader.New(notifier)

	chain := backoffice.NewInterceptorChain()
	l.Install(chain)

	transport := officehttp.NewClient(server.URL+"/api", officehttp.WithInterceptors(chain))

	return rest.New(transport, nil), l, notifier
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("200 returns payload", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/workTracker/42", r.URL.Path)
			assert.Equal(t, "full", r.URL.Query().Get("view"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"data":{"id":"42","status":"open"}}`)
		})

		payload, err := client.Get(context.Background(), "/workTracker/{{id}}", map[string]string{"id": "42"}, url.Values{"view": []string{"full"}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"42","status":"open"}`, string(payload))
	})

	t.Run("other 2xx is an http error", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})

		_, err := client.Get(context.Background(), "/users/{{id}}", map[string]string{"id": "7"}, nil)
		require.Error(t, err)

		httpErr := &backoffice.HTTPError{}
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "http.get.error", httpErr.Code)
		assert.Equal(t, "Http GET [/users/7] failed with 202", httpErr.Message)
	})

	t.Run("failure propagates and notifies", func(t *testing.T) {
		t.Parallel()

		client, l, notifier := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"message": "DB down"}`)
		})

		_, err := client.Get(context.Background(), "/users/", nil, nil)
		require.Error(t, err)
		assert.Equal(t, 500, backoffice.StatusCode(err))
		assert.Equal(t, "DB down", backoffice.Message(err))

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, "DB down", notifier.notifications[0].Message)
		assert.Equal(t, backoffice.SeverityError, notifier.notifications[0].Severity)
		assert.False(t, l.Busy())
	})

	t.Run("missing placeholder issues no request", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		client, _, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusOK)
		})

		_, err := client.Get(context.Background(), "/users/{{id}}", nil, nil)
		require.ErrorIs(t, err, backoffice.ErrMissingPathArg)
		assert.Equal(t, int32(0), hits.Load())
	})
}

func TestClient_Post(t *testing.T) {
	t.Parallel()

	t.Run("201 resolves to the location id", func(t *testing.T) {
		t.Parallel()

		var inFlightDuringCall []string

		client, l, notifier := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users/", r.URL.Path)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ann", body["name"])

			w.Header().Set("Location", "/api/users/abc123")
			w.WriteHeader(http.StatusCreated)
		})

		l.Subscribe(func(busy bool) {
			if busy {
				inFlightDuringCall = l.Registry().InFlight()
			}
		})

		result, err := client.Post(context.Background(), "/users/", nil, map[string]string{"name": "Ann"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "abc123", result.ID)

		assert.Equal(t, []string{"/users/"}, inFlightDuringCall)
		assert.False(t, l.Busy())
		assert.Empty(t, notifier.notifications)
	})

	t.Run("201 without location", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		result, err := client.Post(context.Background(), "/companies/", nil, map[string]string{}, nil)
		require.NoError(t, err)
		assert.Empty(t, result.ID)
	})

	t.Run("200 resolves to the body", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"data":{"id":"u1","email":"a@b.c"}}`)
		})

		result, err := client.Post(context.Background(), "/auth/login", nil, map[string]string{"email": "a@b.c"}, nil)
		require.NoError(t, err)
		assert.Empty(t, result.ID)
		assert.JSONEq(t, `{"id":"u1","email":"a@b.c"}`, string(result.Body))
	})

	t.Run("other 2xx resolves empty", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})

		result, err := client.Post(context.Background(), "/caseTypes/", nil, map[string]string{}, nil)
		require.NoError(t, err)
		assert.Equal(t, &rest.PostResult{}, result)
	})

	t.Run("validation failure propagates", func(t *testing.T) {
		t.Parallel()

		client, _, notifier := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"errorMessage":"Email already exists"}`)
		})

		_, err := client.Post(context.Background(), "/users/", nil, map[string]string{}, nil)
		require.Error(t, err)
		assert.Equal(t, "Email already exists", backoffice.Message(err))
		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, "Unprocessable entity", notifier.notifications[0].Message)
	})
}

func TestClient_Put(t *testing.T) {
	t.Parallel()

	t.Run("returns raw response", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/companies/c%201", r.URL.EscapedPath())
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"ok":true}`)
		})

		resp, err := client.Put(context.Background(), "/companies/{{id}}", map[string]string{"id": "c 1"}, map[string]string{"name": "Acme"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	})

	t.Run("failure is logged and returned", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		logger := &recordingLogger{}
		client := rest.New(officehttp.NewClient(server.URL), logger)

		resp, err := client.Put(context.Background(), "/caseTypes/{{id}}", map[string]string{"id": "k1"}, map[string]string{}, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Contains(t, logger.messages, "error Request failed")
		assert.Contains(t, logger.messages, "debug PUT /caseTypes/k1")
	})
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	t.Run("204 resolves to deleted", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/users/42", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		result, err := client.Delete(context.Background(), "/users/{{id}}", map[string]string{"id": "42"}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "deleted", result)
	})

	t.Run("other 2xx resolves empty", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		result, err := client.Delete(context.Background(), "/users/{{id}}", map[string]string{"id": "42"}, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("body is sent", func(t *testing.T) {
		t.Parallel()

		client, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"reason":"duplicate"}`, string(data))
			w.WriteHeader(http.StatusNoContent)
		})

		result, err := client.Delete(context.Background(), "/workTracker/{{id}}", map[string]string{"id": "w1"}, map[string]string{"reason": "duplicate"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "deleted", result)
	})

	t.Run("failure propagates", func(t *testing.T) {
		t.Parallel()

		client, l, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		result, err := client.Delete(context.Background(), "/users/{{id}}", map[string]string{"id": "42"}, nil, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, backoffice.StatusCode(err))
		assert.Empty(t, result)
		assert.False(t, l.Busy())
	})
}
