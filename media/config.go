// Package media builds the peer connections used for avatar sessions.
package media

import (
	"fmt"
	"time"

	"github.com/pion/webrtc/v4"
)

// DefaultGatherTimeout bounds ICE gathering of a pending connection.
const DefaultGatherTimeout = 10 * time.Second

// Config defines the configuration for peer connections.
type Config struct {
	MinUDPPort    uint16        `mapstructure:"min_udp_port"`   // Minimum UDP port for WebRTC, 0 for any
	MaxUDPPort    uint16        `mapstructure:"max_udp_port"`   // Maximum UDP port for WebRTC, 0 for any
	GatherTimeout time.Duration `mapstructure:"gather_timeout"` // Upper bound on ICE gathering
	RecordDir     string        `mapstructure:"record_dir"`     // Record inbound tracks here when set
}

// Validate checks the port range and timeout.
func (c *Config) Validate() error {
	if (c.MinUDPPort == 0) != (c.MaxUDPPort == 0) {
		return fmt.Errorf("invalid port range: both MinUDPPort (%d) and MaxUDPPort (%d) must be set", c.MinUDPPort, c.MaxUDPPort)
	}
	if c.MinUDPPort > c.MaxUDPPort {
		return fmt.Errorf("invalid port range: MinUDPPort (%d) > MaxUDPPort (%d)", c.MinUDPPort, c.MaxUDPPort)
	}
	if c.GatherTimeout < 0 {
		return fmt.Errorf("invalid gather timeout: %s", c.GatherTimeout)
	}
	return nil
}

// SetPortRange sets the ephemeral UDP port range for WebRTC.
func (c *Config) SetPortRange(s *webrtc.SettingEngine) error {
	if c.MinUDPPort == 0 && c.MaxUDPPort == 0 {
		return nil
	}
	if err := s.SetEphemeralUDPPortRange(c.MinUDPPort, c.MaxUDPPort); err != nil {
		return fmt.Errorf("failed to set ephemeral UDP port range: %w", err)
	}
	return nil
}
