// Package config loads client settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Env holds the raw environment settings of the back-office client.
type Env struct {
	API         string        `env:"OFFICE_API"`
	Timeout     time.Duration `env:"OFFICE_TIMEOUT"      envDefault:"300s"`
	RetryMax    int           `env:"OFFICE_RETRY_MAX"    envDefault:"0"`
	UserAgent   string        `env:"OFFICE_USER_AGENT"`
	NATSURL     string        `env:"OFFICE_NATS_URL"`
	NATSSubject string        `env:"OFFICE_NATS_SUBJECT" envDefault:"backoffice.notifications"`
	Debug       bool          `env:"OFFICE_DEBUG"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	err := env.Parse(target)
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// FromEnv reads the OFFICE_* variables.
func FromEnv() (*Env, error) {
	var settings Env

	err := ParseEnv(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Config converts the settings into a client configuration. logger and
// notifier may be nil.
func (e *Env) Config(logger backoffice.Logger, notifier backoffice.Notifier) *backoffice.Config {
	return &backoffice.Config{
		APIEndpoint: e.API,
		HTTPTimeout: e.Timeout,
		RetryMax:    e.RetryMax,
		UserAgent:   e.UserAgent,
		Debug:       e.Debug,
		Logger:      logger,
		Notifier:    notifier,
	}
}
