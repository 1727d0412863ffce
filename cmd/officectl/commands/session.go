package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/internal/logging"
	"github.com/ashishkumar1990/laywer-client/internal/notify"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

// session is everything a command needs to talk to the server: the client,
// the notification channel printing toasts to stderr and the busy spinner.
type session struct {
	client  *officeclient.Client
	config  *Config
	logger  *logging.ZapLogger
	channel *notify.Channel
	spinner *spinner
	stop    func()

	// forget drops the stored session on Close.
	forget bool
}

// openSession builds a client from the effective configuration and restores
// the saved login session.
func openSession(cmd *cobra.Command) (*session, error) {
	config := loadConfig()
	if config.API == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	logger, err := logging.NewZap(viper.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()

	channel := notify.NewChannel(notify.WithSink(notify.NewWriterSink(stderr, !config.NoColor && isTerminal(stderr))))
	channel.Open()

	s := &session{config: config, logger: logger, channel: channel}

	if config.NATSURL != "" {
		conn, err := notify.DialNATS(config.NATSURL)
		if err != nil {
			_ = s.release()

			return nil, err
		}

		// Closing the channel drains the connection.
		channel.AddSink(notify.NewNATSSink(conn, config.NATSSubject))
	}

	client, err := officeclient.New(cmd.Context(), &backoffice.Config{
		APIEndpoint: config.API,
		Logger:      logger,
		Debug:       viper.GetBool("verbose"),
		UserAgent:   "officectl/" + cliVersion,
		Notifier:    channel,
	})
	if err != nil {
		_ = s.release()

		return nil, err
	}

	s.client = client
	s.client.RestoreSession(toHTTPCookies(config.Session))

	s.spinner = newSpinner(stderr)
	s.stop = client.Loader().Subscribe(s.spinner.toggle)

	return s, nil
}

// Close persists a changed login session and releases every resource.
func (s *session) Close() error {
	if s.stop != nil {
		s.stop()
	}

	if s.spinner != nil {
		s.spinner.toggle(false)
	}

	var errs []error

	if s.client != nil {
		errs = append(errs, s.saveSession())
	}

	errs = append(errs, s.release())

	return errors.Join(errs...)
}

func (s *session) saveSession() error {
	current := fromHTTPCookies(s.client.SessionCookies())
	if s.forget {
		current = nil
	}

	if sameCookies(current, s.config.Session) {
		return nil
	}

	stored, err := readConfigFile()
	if err != nil {
		return err
	}

	// The session is only meaningful for the API it was opened against.
	stored.API = s.config.API
	stored.Session = current

	return saveConfigStruct(stored)
}

func (s *session) release() error {
	var errs []error

	if s.client != nil {
		errs = append(errs, s.client.Close())
	}

	errs = append(errs, s.channel.Close())

	// Syncing stderr fails on some platforms; that is not worth reporting.
	_ = s.logger.Sync()

	return errors.Join(errs...)
}

// withSession opens a session, runs fn and closes the session again.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) (err error) {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	defer func() {
		closeErr := s.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing session: %w", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return fn(ctx, s)
}

func toHTTPCookies(cookies []SessionCookie) []*http.Cookie {
	result := make([]*http.Cookie, 0, len(cookies))

	for _, cookie := range cookies {
		result = append(result, &http.Cookie{Name: cookie.Name, Value: cookie.Value, Path: "/"})
	}

	return result
}

func fromHTTPCookies(cookies []*http.Cookie) []SessionCookie {
	var result []SessionCookie

	for _, cookie := range cookies {
		result = append(result, SessionCookie{Name: cookie.Name, Value: cookie.Value})
	}

	return result
}

func sameCookies(a, b []SessionCookie) bool {
	if len(a) != len(b) {
		return false
	}

	seen := make(map[SessionCookie]int, len(a))
	for _, cookie := range a {
		seen[cookie]++
	}

	for _, cookie := range b {
		if seen[cookie] == 0 {
			return false
		}

		seen[cookie]--
	}

	return true
}

// spinner prints a busy line on a terminal while requests are in flight.
type spinner struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
	shown   bool
}

func newSpinner(out io.Writer) *spinner {
	return &spinner{out: out, enabled: isTerminal(out)}
}

func (s *spinner) toggle(busy bool) {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case busy && !s.shown:
		_, _ = io.WriteString(s.out, "Loading...")
		s.shown = true
	case !busy && s.shown:
		_, _ = io.WriteString(s.out, "\r\033[K")
		s.shown = false
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}
