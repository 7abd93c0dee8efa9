package app

import (
	"avatar/ice"
	"avatar/media"
	"avatar/metric"
	"avatar/session"
	"avatar/signal"
	"avatar/types/avatar"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Default values for the backend connection.
const (
	DefaultBackendURL     = "http://localhost:5000"
	DefaultRequestTimeout = 30 * time.Second
)

// ErrInvalidBackendURL is returned for backend URLs that are not absolute http(s) URLs.
var ErrInvalidBackendURL = errors.New("invalid backend url")

// BackendConfig describes the avatar backend.
type BackendConfig struct {
	URL             string        `mapstructure:"url"`              // Base URL of the backend
	ClientID        string        `mapstructure:"client_id"`        // Session identifier, generated when empty
	Timeout         time.Duration `mapstructure:"timeout"`          // Per-request timeout
	RefreshInterval time.Duration `mapstructure:"refresh_interval"` // Relay credential refresh period
}

// Validate checks the URL and durations.
func (c BackendConfig) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBackendURL, c.URL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid request timeout: %s", c.Timeout)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("invalid refresh interval: %s", c.RefreshInterval)
	}
	return nil
}

// Config contains the configuration of the application.
type Config struct {
	Signal    signal.Config    `mapstructure:"signal"`
	Metrics   metric.Config    `mapstructure:"metrics"`
	Media     media.Config     `mapstructure:"media"`
	Session   session.Config   `mapstructure:"session"`
	Backend   BackendConfig    `mapstructure:"backend"`
	Avatar    avatar.Selection `mapstructure:"avatar"`
	Autostart bool             `mapstructure:"autostart"` // Start a session once the first credential arrives
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Signal: signal.Config{Port: signal.DefaultPort},
		Metrics: metric.Config{
			Port: metric.DefaultMetricsPort,
			Path: metric.DefaultMetricsPath,
		},
		Media:   media.Config{GatherTimeout: media.DefaultGatherTimeout},
		Session: session.DefaultConfig(),
		Backend: BackendConfig{
			URL:             DefaultBackendURL,
			Timeout:         DefaultRequestTimeout,
			RefreshInterval: ice.DefaultRefreshInterval,
		},
		Avatar: avatar.Default(),
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Signal.Validate(); err != nil {
		return fmt.Errorf("signal: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := c.Media.Validate(); err != nil {
		return fmt.Errorf("media: %w", err)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Backend.Validate(); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	if err := c.Avatar.Validate(); err != nil {
		return fmt.Errorf("avatar: %w", err)
	}
	return nil
}
