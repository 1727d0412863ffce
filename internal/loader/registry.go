// Package loader tracks in-flight requests and drives the busy indicator.
//
// The registry is keyed by request URL. A URL is either in flight or not:
// two overlapping requests to the same URL share one entry, and the first
// of them to complete clears it.
package loader

import (
	"sort"
	"sync"
)

// Registry is the set of request URLs awaiting a response. The busy state
// is a pure function of the set being non-empty.
type Registry struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
	nextID   int
	subs     []subscription
}

type subscription struct {
	id int
	fn func(busy bool)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{inFlight: make(map[string]struct{})}
}

// Register marks url as in flight. Registering a URL that is already in
// flight is a no-op.
func (r *Registry) Register(url string) {
	r.mu.Lock()

	if _, ok := r.inFlight[url]; ok {
		r.mu.Unlock()

		return
	}

	wasBusy := len(r.inFlight) > 0
	r.inFlight[url] = struct{}{}

	r.transition(wasBusy)
}

// Deregister clears url. Deregistering an absent URL is a no-op.
func (r *Registry) Deregister(url string) {
	r.mu.Lock()

	if _, ok := r.inFlight[url]; !ok {
		r.mu.Unlock()

		return
	}

	wasBusy := len(r.inFlight) > 0
	delete(r.inFlight, url)

	r.transition(wasBusy)
}

// Reset clears every entry. It is meant for process teardown.
func (r *Registry) Reset() {
	r.mu.Lock()

	wasBusy := len(r.inFlight) > 0
	r.inFlight = make(map[string]struct{})

	r.transition(wasBusy)
}

// Busy reports whether any request is in flight.
func (r *Registry) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.inFlight) > 0
}

// InFlight returns the in-flight URLs, sorted.
func (r *Registry) InFlight() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	urls := make([]string, 0, len(r.inFlight))
	for url := range r.inFlight {
		urls = append(urls, url)
	}

	sort.Strings(urls)

	return urls
}

// Subscribe registers fn to be called with the new busy state each time it
// changes. Callbacks run synchronously, outside the registry lock, in
// subscription order. The returned function removes the subscription.
func (r *Registry) Subscribe(fn func(busy bool)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscription{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, sub := range r.subs {
			if sub.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)

				return
			}
		}
	}
}

// transition must be called with mu held; it releases mu and notifies
// subscribers when the busy state changed. The state is read again for
// each callback so a late callback reports the current state.
func (r *Registry) transition(wasBusy bool) {
	if (len(r.inFlight) > 0) == wasBusy {
		r.mu.Unlock()

		return
	}

	subs := make([]subscription, len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.fn(r.Busy())
	}
}
