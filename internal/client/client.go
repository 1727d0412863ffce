package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/internal/http"
	"github.com/ashishkumar1990/laywer-client/internal/loader"
	"github.com/ashishkumar1990/laywer-client/internal/notify"
	"github.com/ashishkumar1990/laywer-client/internal/response"
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Client implements the backoffice.Client interface.
type Client struct {
	httpClient *http.Client
	rest       *rest.Client
	baseURL    string
	loader     *loader.Loader
	metrics    *backoffice.MetricsCollector

	// channel is only set when the client owns its notification channel.
	channel *notify.Channel

	// Resource clients
	users        *UsersClient
	companies    *CompaniesClient
	caseTypes    *CaseTypesClient
	workTrackers *WorkTrackersClient
	auth         *AuthClient
}

var _ backoffice.Client = (*Client)(nil)

func createHTTPClientOptions(config *backoffice.Config, chain *backoffice.InterceptorChain) []http.Option {
	httpOpts := []http.Option{http.WithInterceptors(chain)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.TolerateEmptySuccessBody != nil {
		classifier := response.New()
		classifier.TolerateEmptySuccessBody = *config.TolerateEmptySuccessBody
		httpOpts = append(httpOpts, http.WithClassifier(classifier))
	}

	return httpOpts
}

// New creates a back-office client. config.APIEndpoint must already point
// at the API root; see officeclient.New for endpoint normalisation.
func New(_ context.Context, config *backoffice.Config) (*Client, error) {
	if config == nil {
		return nil, backoffice.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, backoffice.ErrAPIEndpointRequired
	}

	client := &Client{
		baseURL: config.APIEndpoint,
		metrics: backoffice.NewMetricsCollector(),
	}

	notifier := config.Notifier
	if notifier == nil {
		client.channel = notify.NewChannel()
		if config.Logger != nil {
			client.channel.AddSink(notify.NewLogSink(config.Logger))
		}

		client.channel.Open()
		notifier = client.channel
	}

	chain := backoffice.NewInterceptorChain()

	if len(config.Headers) > 0 {
		chain.AddRequestInterceptor(backoffice.HeaderInterceptor(config.Headers))
	}

	chain.AddRequestInterceptor(backoffice.RequestIDInterceptor())
	chain.AddRequestInterceptor(backoffice.MetricsRequestInterceptor(client.metrics))
	chain.AddResponseInterceptor(backoffice.MetricsResponseInterceptor(client.metrics))

	if config.Debug && config.Logger != nil {
		chain.AddRequestInterceptor(backoffice.LoggingInterceptor(config.Logger))
		chain.AddResponseInterceptor(backoffice.LoggingResponseInterceptor(config.Logger))
	}

	client.loader = loader.New(notifier)
	client.loader.Install(chain)

	client.httpClient = http.NewClient(config.APIEndpoint, createHTTPClientOptions(config, chain)...)
	client.rest = rest.New(client.httpClient, config.Logger)

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.rest)
	c.companies = NewCompaniesClient(c.rest)
	c.caseTypes = NewCaseTypesClient(c.rest)
	c.workTrackers = NewWorkTrackersClient(c.rest)
	c.auth = NewAuthClient(c.rest)
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Users implements backoffice.Client.Users.
func (c *Client) Users() backoffice.UsersClient {
	return c.users
}

// Companies implements backoffice.Client.Companies.
func (c *Client) Companies() backoffice.CompaniesClient {
	return c.companies
}

// CaseTypes implements backoffice.Client.CaseTypes.
func (c *Client) CaseTypes() backoffice.CaseTypesClient {
	return c.caseTypes
}

// WorkTrackers implements backoffice.Client.WorkTrackers.
func (c *Client) WorkTrackers() backoffice.WorkTrackersClient {
	return c.workTrackers
}

// Auth implements backoffice.Client.Auth.
func (c *Client) Auth() backoffice.AuthClient {
	return c.auth
}

// Rest exposes the templating client for endpoints without a typed client.
func (c *Client) Rest() *rest.Client {
	return c.rest
}

// Loader returns the in-flight request tracker.
func (c *Client) Loader() *loader.Loader {
	return c.loader
}

// Metrics returns per-endpoint call statistics.
func (c *Client) Metrics() *backoffice.MetricsCollector {
	return c.metrics
}

// Notifications returns the notification channel owned by the client, or
// nil when the caller supplied its own notifier.
func (c *Client) Notifications() *notify.Channel {
	return c.channel
}

// SessionCookies returns the cookies held for the API, so a session can be
// persisted between processes.
func (c *Client) SessionCookies() []*nethttp.Cookie {
	return c.httpClient.Cookies()
}

// RestoreSession seeds the cookie jar with a previously saved session.
func (c *Client) RestoreSession(cookies []*nethttp.Cookie) {
	c.httpClient.SetCookies(cookies)
}

// Close releases the notification channel owned by the client.
func (c *Client) Close() error {
	if c.channel == nil {
		return nil
	}

	err := c.channel.Close()
	if err != nil {
		return fmt.Errorf("closing notifications: %w", err)
	}

	return nil
}
