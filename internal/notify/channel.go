// Package notify implements the single-slot notification channel.
//
// At most one notification is visible at a time. Showing a new one replaces
// the current one, and each notification hides itself after a fixed delay
// unless it is dismissed first. The channel is handed to other layers as a
// backoffice.Notifier, so code without any link to the presentation layer
// can still report to the user.
package notify

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Sink presents notifications. Show is called for every notification that
// becomes visible and Hide when the visible one goes away.
type Sink interface {
	Show(ctx context.Context, notification backoffice.Notification) error
	Hide(ctx context.Context) error
}

// Option adjusts a single notification.
type Option func(*backoffice.Notification)

// WithSeverity sets the severity. The default is info.
func WithSeverity(severity backoffice.Severity) Option {
	return func(n *backoffice.Notification) {
		n.Severity = severity
	}
}

// WithPosition sets the screen position. The default is top right.
func WithPosition(vertical, horizontal string) Option {
	return func(n *backoffice.Notification) {
		n.Position = backoffice.Position{Vertical: vertical, Horizontal: horizontal}
	}
}

// ChannelOption configures a Channel.
type ChannelOption func(*Channel)

// WithAutoHide overrides how long a notification stays visible.
func WithAutoHide(d time.Duration) ChannelOption {
	return func(c *Channel) {
		if d > 0 {
			c.autoHide = d
		}
	}
}

// WithSink adds a sink.
func WithSink(sink Sink) ChannelOption {
	return func(c *Channel) {
		if sink != nil {
			c.sinks = append(c.sinks, sink)
		}
	}
}

// Channel is the single-slot notification broadcaster.
type Channel struct {
	// fanout serialises slot changes together with the sink calls they
	// cause, so sinks see the same order as the slot. Taken before mu.
	fanout sync.Mutex

	mu       sync.Mutex
	open     bool
	current  *backoffice.Notification
	seq      uint64
	timer    *time.Timer
	autoHide time.Duration
	sinks    []Sink
}

// NewChannel returns a closed channel. Call Open before showing anything.
func NewChannel(opts ...ChannelOption) *Channel {
	c := &Channel{autoHide: constants.ToastAutoHideDuration}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Open makes the channel accept notifications.
func (c *Channel) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = true
}

// AddSink adds a sink to an existing channel.
func (c *Channel) AddSink(sink Sink) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sinks = append(c.sinks, sink)
}

// ShowToast shows message, replacing whatever is visible.
func (c *Channel) ShowToast(message string, opts ...Option) error {
	notification := backoffice.Notification{Message: message}

	for _, opt := range opts {
		opt(&notification)
	}

	return c.Notify(context.Background(), notification)
}

// Notify implements backoffice.Notifier. Missing severity and position are
// filled with the defaults.
func (c *Channel) Notify(ctx context.Context, notification backoffice.Notification) error {
	if notification.Severity == "" {
		notification.Severity = backoffice.SeverityInfo
	}

	if notification.Position == (backoffice.Position{}) {
		notification.Position = backoffice.DefaultPosition
	}

	c.fanout.Lock()
	defer c.fanout.Unlock()

	c.mu.Lock()

	if !c.open {
		c.mu.Unlock()

		return backoffice.ErrChannelClosed
	}

	c.stopTimer()
	c.seq++
	seq := c.seq
	c.current = &notification
	c.timer = time.AfterFunc(c.autoHide, func() { c.expire(seq) })
	sinks := c.copySinks()

	c.mu.Unlock()

	var errs []error

	for _, sink := range sinks {
		err := sink.Show(ctx, notification)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Dismiss hides the visible notification. It reports whether one was visible.
func (c *Channel) Dismiss() bool {
	c.fanout.Lock()
	defer c.fanout.Unlock()

	c.mu.Lock()

	if c.current == nil {
		c.mu.Unlock()

		return false
	}

	c.stopTimer()
	c.current = nil
	sinks := c.copySinks()

	c.mu.Unlock()

	hide(sinks)

	return true
}

// Current returns the visible notification.
func (c *Channel) Current() (backoffice.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return backoffice.Notification{}, false
	}

	return *c.current, true
}

// Close stops the channel. The visible notification is hidden, later shows
// fail with backoffice.ErrChannelClosed and sinks that are io.Closers are
// closed. The channel can be opened again.
func (c *Channel) Close() error {
	c.fanout.Lock()
	defer c.fanout.Unlock()

	c.mu.Lock()

	c.open = false
	c.stopTimer()
	visible := c.current != nil
	c.current = nil
	sinks := c.copySinks()

	c.mu.Unlock()

	if visible {
		hide(sinks)
	}

	var errs []error

	for _, sink := range sinks {
		if closer, ok := sink.(io.Closer); ok {
			err := closer.Close()
			if err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (c *Channel) expire(seq uint64) {
	c.fanout.Lock()
	defer c.fanout.Unlock()

	c.mu.Lock()

	if seq != c.seq || c.current == nil {
		c.mu.Unlock()

		return
	}

	c.current = nil
	c.timer = nil
	sinks := c.copySinks()

	c.mu.Unlock()

	hide(sinks)
}

func (c *Channel) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Channel) copySinks() []Sink {
	sinks := make([]Sink, len(c.sinks))
	copy(sinks, c.sinks)

	return sinks
}

func hide(sinks []Sink) {
	for _, sink := range sinks {
		_ = sink.Hide(context.Background())
	}
}
