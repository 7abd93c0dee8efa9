package session

import (
	"fmt"
	"time"
)

// Default values for session configuration.
const (
	DefaultSettleDelay = 5 * time.Second
	DefaultPopTimeout  = 30 * time.Second
)

// disconnectTimeout bounds the best-effort disconnect notification.
const disconnectTimeout = 5 * time.Second

// Config defines the configuration for the session controller.
type Config struct {
	SettleDelay       time.Duration `mapstructure:"settle_delay"`       // Grace period between the first video frame and Active
	PopTimeout        time.Duration `mapstructure:"pop_timeout"`        // How long a start waits for a ready connection
	ReleaseRecognizer bool          `mapstructure:"release_recognizer"` // Release the recognizer on stop instead of only stopping it
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SettleDelay: DefaultSettleDelay,
		PopTimeout:  DefaultPopTimeout,
	}
}

// Validate checks the durations.
func (c *Config) Validate() error {
	if c.SettleDelay < 0 {
		return fmt.Errorf("invalid settle delay: %s", c.SettleDelay)
	}
	if c.PopTimeout <= 0 {
		return fmt.Errorf("invalid pop timeout: %s", c.PopTimeout)
	}
	return nil
}
