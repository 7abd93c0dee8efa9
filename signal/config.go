package signal

import (
	"errors"
	"fmt"
	"os"
)

const (
	// DefaultPort is the default port of the control API.
	DefaultPort = 7070
)

// Below is the Error message for the server.
var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidCertFile = errors.New("invalid cert file")
	ErrInvalidKeyFile  = errors.New("invalid key file")
)

// Config is the configuration of the control API server.
type Config struct {
	Port     int    `mapstructure:"port"`
	Debug    bool   `mapstructure:"debug"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// TLS reports whether both certificate files are configured.
func (c Config) TLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// Validate validates the port number and the files for certification.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("must be between 1 and 65535, given %d: %w", c.Port, ErrInvalidPort)
	}

	if c.CertFile == "" && c.KeyFile == "" {
		return nil
	}

	if err := checkFile(c.CertFile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCertFile, err)
	}
	if err := checkFile(c.KeyFile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	return nil
}

func checkFile(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist", path)
		}
		return fmt.Errorf("unable to access %s", path)
	}
	return nil
}
