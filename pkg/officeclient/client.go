package officeclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ashishkumar1990/laywer-client/internal/client"
	envconfig "github.com/ashishkumar1990/laywer-client/internal/config"
	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/internal/notify"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Client is the back-office client returned by New.
type Client = client.Client

// New creates a new back-office API client.
func New(ctx context.Context, config *backoffice.Config) (*Client, error) {
	if config == nil {
		return nil, backoffice.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, backoffice.ErrAPIEndpointRequired
	}

	endpoint, err := NormalizeEndpoint(config.APIEndpoint)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.APIEndpoint = endpoint

	// Use the internal client implementation
	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithEndpoint creates a new client with just an API endpoint.
func NewWithEndpoint(ctx context.Context, endpoint string) (*Client, error) {
	return New(ctx, &backoffice.Config{
		APIEndpoint: endpoint,
	})
}

// NewFromEnv creates a client from the OFFICE_* environment variables.
// When OFFICE_NATS_URL is set, notifications are also published to NATS;
// the connection is drained by Close.
func NewFromEnv(ctx context.Context, logger backoffice.Logger) (*Client, error) {
	settings, err := envconfig.FromEnv()
	if err != nil {
		return nil, err
	}

	c, err := New(ctx, settings.Config(logger, nil))
	if err != nil {
		return nil, err
	}

	if settings.NATSURL == "" {
		return c, nil
	}

	conn, err := notify.DialNATS(settings.NATSURL)
	if err != nil {
		_ = c.Close()

		return nil, err
	}

	c.Notifications().AddSink(notify.NewNATSSink(conn, settings.NATSSubject))

	return c, nil
}

// NormalizeEndpoint adds a scheme when missing, trims trailing slashes and
// appends the API root unless the path already ends with it.
func NormalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing API endpoint: %w", err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("parsing API endpoint %q: %w", endpoint, backoffice.ErrAPIEndpointRequired)
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(parsed.Path, constants.APIRoot) {
		parsed.Path += constants.APIRoot
	}

	parsed.RawPath = ""
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String(), nil
}
