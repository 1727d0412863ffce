package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashishkumar1990/laywer-client/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("OFFICE_API", "")

	settings, err := config.FromEnv()
	require.NoError(t, err)

	assert.Empty(t, settings.API)
	assert.Equal(t, 300*time.Second, settings.Timeout)
	assert.Equal(t, 0, settings.RetryMax)
	assert.Equal(t, "backoffice.notifications", settings.NATSSubject)
	assert.False(t, settings.Debug)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OFFICE_API", "https://office.example")
	t.Setenv("OFFICE_TIMEOUT", "30s")
	t.Setenv("OFFICE_RETRY_MAX", "2")
	t.Setenv("OFFICE_NATS_URL", "nats://127.0.0.1:4222")
	t.Setenv("OFFICE_NATS_SUBJECT", "office.toasts")
	t.Setenv("OFFICE_DEBUG", "true")

	settings, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "nats://127.0.0.1:4222", settings.NATSURL)
	assert.Equal(t, "office.toasts", settings.NATSSubject)

	cfg := settings.Config(nil, nil)
	assert.Equal(t, "https://office.example", cfg.APIEndpoint)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2, cfg.RetryMax)
	assert.True(t, cfg.Debug)
	assert.Nil(t, cfg.Logger)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("OFFICE_TIMEOUT", "soon")

	_, err := config.FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
