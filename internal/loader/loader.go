package loader

import (
	"context"
	"errors"

	"github.com/ashishkumar1990/laywer-client/internal/response"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// RequestInterceptor marks the request URL as in flight.
func RequestInterceptor(registry *Registry) backoffice.RequestInterceptor {
	return func(_ context.Context, req *backoffice.Request) error {
		registry.Register(req.URL)

		return nil
	}
}

// ResponseInterceptor clears the request URL and, when the call failed,
// pushes an error notification. The message is the body's message field,
// else the status lookup. Calls abandoned because the caller cancelled its
// context are not reported. notifier may be nil.
func ResponseInterceptor(registry *Registry, notifier backoffice.Notifier) backoffice.ResponseInterceptor {
	return func(ctx context.Context, req *backoffice.Request, resp *backoffice.Response) error {
		registry.Deregister(req.URL)

		if resp.Error == nil || notifier == nil {
			return nil
		}

		if ctx.Err() != nil && errors.Is(resp.Error, context.Canceled) {
			return nil
		}

		return notifier.Notify(ctx, backoffice.Notification{
			Message:  response.ErrorMessage(resp.StatusCode, resp.Body),
			Severity: backoffice.SeverityError,
			Position: backoffice.DefaultPosition,
		})
	}
}

// Loader bundles a registry with the interceptors that maintain it.
type Loader struct {
	registry *Registry
	notifier backoffice.Notifier
}

// New creates a loader reporting failures to notifier.
func New(notifier backoffice.Notifier) *Loader {
	return &Loader{
		registry: NewRegistry(),
		notifier: notifier,
	}
}

// Install adds the loader's interceptors to chain.
func (l *Loader) Install(chain *backoffice.InterceptorChain) {
	chain.AddRequestInterceptor(RequestInterceptor(l.registry))
	chain.AddResponseInterceptor(ResponseInterceptor(l.registry, l.notifier))
}

// Registry returns the in-flight registry.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Busy reports whether any request is in flight.
func (l *Loader) Busy() bool {
	return l.registry.Busy()
}

// Subscribe forwards to the registry.
func (l *Loader) Subscribe(fn func(busy bool)) func() {
	return l.registry.Subscribe(fn)
}
