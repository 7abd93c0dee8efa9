package metric

import (
	"errors"
	"fmt"
	"strings"
)

// Config defines the configuration for the metrics server.
type Config struct {
	Port int    `mapstructure:"port"` // Port for metrics server, 0 disables it
	Path string `mapstructure:"path"` // Path for metrics endpoint
}

// Default values for metrics configuration.
const (
	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

// ErrInvalidPath is returned when the metrics path is not absolute.
var ErrInvalidPath = errors.New("metrics path must start with /")

// Validate checks the metrics configuration.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("metrics port %d out of range", c.Port)
	}
	if !strings.HasPrefix(c.Path, "/") {
		return ErrInvalidPath
	}
	return nil
}
