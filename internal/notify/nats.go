package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Event types published by NATSSink.
const (
	EventShow = "show"
	EventHide = "hide"
)

// Publisher is the part of *nats.Conn the sink needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// drainer is implemented by *nats.Conn.
type drainer interface {
	Drain() error
	IsClosed() bool
}

// Event is the JSON message published for every show and hide.
type Event struct {
	Type         string                   `json:"type"`
	Notification *backoffice.Notification `json:"notification,omitempty"`
	Time         time.Time                `json:"time"`
}

// NATSSink publishes notifications to a NATS subject so other processes,
// such as a desktop notifier, can display them.
type NATSSink struct {
	publisher Publisher
	subject   string
	closeOnce sync.Once
}

// NewNATSSink returns a sink publishing to subject. An empty subject uses
// the default one.
func NewNATSSink(publisher Publisher, subject string) *NATSSink {
	if subject == "" {
		subject = constants.DefaultNATSSubject
	}

	return &NATSSink{publisher: publisher, subject: subject}
}

// DialNATS connects to the NATS server at url.
func DialNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("officectl"),
		nats.Timeout(constants.ShortHTTPTimeout),
		nats.MaxReconnects(3),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return conn, nil
}

// Subject returns the subject notifications are published on.
func (s *NATSSink) Subject() string {
	return s.subject
}

// Show implements Sink.
func (s *NATSSink) Show(_ context.Context, notification backoffice.Notification) error {
	return s.publish(Event{Type: EventShow, Notification: &notification, Time: time.Now().UTC()})
}

// Hide implements Sink.
func (s *NATSSink) Hide(context.Context) error {
	return s.publish(Event{Type: EventHide, Time: time.Now().UTC()})
}

// Close drains the publisher when it supports draining, as *nats.Conn does.
// Only the first call has any effect.
func (s *NATSSink) Close() error {
	var err error

	s.closeOnce.Do(func() {
		conn, ok := s.publisher.(drainer)
		if !ok || conn.IsClosed() {
			return
		}

		drainErr := conn.Drain()
		if drainErr != nil {
			err = fmt.Errorf("draining NATS connection: %w", drainErr)
		}
	})

	return err
}

func (s *NATSSink) publish(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding notification event: %w", err)
	}

	err = s.publisher.Publish(s.subject, data)
	if err != nil {
		return fmt.Errorf("publishing notification to %s: %w", s.subject, err)
	}

	return nil
}
