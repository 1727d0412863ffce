package backoffice

import "context"

// Severity is the level a notification is displayed with.
type Severity string

// Severities understood by every notification sink.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Position anchors a notification on screen.
type Position struct {
	Vertical   string `json:"vertical"   yaml:"vertical"`
	Horizontal string `json:"horizontal" yaml:"horizontal"`
}

// DefaultPosition is the top right corner.
var DefaultPosition = Position{Vertical: "top", Horizontal: "right"}

// Notification is a single user-visible message.
type Notification struct {
	Message  string   `json:"message"  yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
	Position Position `json:"position" yaml:"position"`
}

// Notifier surfaces notifications to the user. It is handed to the HTTP
// layer as a capability so code far from the presentation layer can report
// failures.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, notification Notification) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, notification Notification) error {
	return f(ctx, notification)
}
