package officeclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := officeclient.New(context.Background(), nil)
	require.ErrorIs(t, err, backoffice.ErrConfigRequired)

	_, err = officeclient.New(context.Background(), &backoffice.Config{})
	require.ErrorIs(t, err, backoffice.ErrAPIEndpointRequired)

	config := &backoffice.Config{APIEndpoint: "office.example.com/"}

	client, err := officeclient.New(context.Background(), config)
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	assert.Equal(t, "https://office.example.com/api", client.BaseURL())
	assert.Equal(t, "office.example.com/", config.APIEndpoint, "the caller's config is not modified")
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "https://office.example.com", want: "https://office.example.com/api"},
		{in: "https://office.example.com/", want: "https://office.example.com/api"},
		{in: "https://office.example.com/api", want: "https://office.example.com/api"},
		{in: "https://office.example.com/api/", want: "https://office.example.com/api"},
		{in: "http://localhost:8080", want: "http://localhost:8080/api"},
		{in: "office.example.com/backoffice", want: "https://office.example.com/backoffice/api"},
		{in: " https://office.example.com?x=1 ", want: "https://office.example.com/api"},
	}

	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			t.Parallel()

			got, err := officeclient.NormalizeEndpoint(testCase.in)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}

	_, err := officeclient.NormalizeEndpoint("https://")
	require.Error(t, err)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/caseTypes/count":
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"count": 4}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := officeclient.NewWithEndpoint(context.Background(), server.URL)
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	var transitions []bool

	unsubscribe := client.Loader().Subscribe(func(busy bool) {
		transitions = append(transitions, busy)
	})
	defer unsubscribe()

	count, err := client.CaseTypes().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, []bool{true, false}, transitions)

	_, err = client.Companies().Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, backoffice.IsNotFound(err))

	current, ok := client.Notifications().Current()
	require.True(t, ok)
	assert.Equal(t, "Not found", current.Message)
	assert.Equal(t, backoffice.SeverityError, current.Severity)
}

func TestNewFromEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/users/count", request.URL.Path)
		_, _ = writer.Write([]byte(`2`))
	}))
	defer server.Close()

	t.Setenv("OFFICE_API", server.URL)
	t.Setenv("OFFICE_NATS_URL", "")

	client, err := officeclient.NewFromEnv(context.Background(), nil)
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	count, err := client.Users().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewFromEnv_NATSUnreachable(t *testing.T) {
	t.Setenv("OFFICE_API", "https://office.example.com")
	t.Setenv("OFFICE_NATS_URL", "nats://127.0.0.1:1")

	_, err := officeclient.NewFromEnv(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to NATS")
}

func TestNewFromEnv_Missing(t *testing.T) {
	t.Setenv("OFFICE_API", "")

	_, err := officeclient.NewFromEnv(context.Background(), nil)
	require.ErrorIs(t, err, backoffice.ErrAPIEndpointRequired)
}
