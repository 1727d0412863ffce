package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// WriterSink prints each notification as one line, e.g. on stderr.
type WriterSink struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[backoffice.Severity]lipgloss.Style
}

// NewWriterSink returns a sink writing to out. When color is set the
// severity tag is coloured with ANSI escapes, whatever out is attached to.
func NewWriterSink(out io.Writer, color bool) *WriterSink {
	sink := &WriterSink{out: out}

	if color {
		renderer := lipgloss.NewRenderer(out)
		renderer.SetColorProfile(termenv.ANSI)

		sink.styles = map[backoffice.Severity]lipgloss.Style{
			backoffice.SeverityError:   renderer.NewStyle().Foreground(lipgloss.Color("1")),
			backoffice.SeveritySuccess: renderer.NewStyle().Foreground(lipgloss.Color("2")),
			backoffice.SeverityWarning: renderer.NewStyle().Foreground(lipgloss.Color("3")),
			backoffice.SeverityInfo:    renderer.NewStyle().Foreground(lipgloss.Color("4")),
		}
	}

	return sink
}

// Show implements Sink.
func (s *WriterSink) Show(_ context.Context, notification backoffice.Notification) error {
	tag := strings.ToUpper(string(notification.Severity))
	if s.styles != nil {
		style, ok := s.styles[notification.Severity]
		if !ok {
			style = s.styles[backoffice.SeverityInfo]
		}

		tag = style.Render(tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.out, "[%s] %s\n", tag, notification.Message)
	if err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}

	return nil
}

// Hide implements Sink. A printed line cannot be taken back.
func (s *WriterSink) Hide(context.Context) error {
	return nil
}

// LogSink forwards notifications to a logger at a level matching their
// severity.
type LogSink struct {
	logger backoffice.Logger
}

// NewLogSink returns a sink logging through logger.
func NewLogSink(logger backoffice.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Show implements Sink.
func (s *LogSink) Show(_ context.Context, notification backoffice.Notification) error {
	fields := map[string]interface{}{
		"severity": string(notification.Severity),
		"position": notification.Position.Vertical + "-" + notification.Position.Horizontal,
	}

	switch notification.Severity {
	case backoffice.SeverityError:
		s.logger.Error(notification.Message, fields)
	case backoffice.SeverityWarning:
		s.logger.Warn(notification.Message, fields)
	default:
		s.logger.Info(notification.Message, fields)
	}

	return nil
}

// Hide implements Sink.
func (s *LogSink) Hide(context.Context) error {
	s.logger.Debug("Notification hidden", nil)

	return nil
}
