package cmd_test

import (
	"avatar/app"
	"avatar/cmd"
	"avatar/signal"
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Setenv(cmd.EnvConfig, "")

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, c app.Config)
		wantErr bool
	}{
		{
			name: "given valid args when parsed then return config",
			args: []string{"-port=8080", "-key=/path/to/key.pem", "-cert=/path/to/cert.pem"},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, signal.Config{Port: 8080, KeyFile: "/path/to/key.pem", CertFile: "/path/to/cert.pem"}, c.Signal)
			},
		},
		{
			name: "given no args when parsed then return defaults",
			args: []string{},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, app.DefaultConfig(), c)
			},
		},
		{
			name: "given avatar flags when parsed then the selection is overridden",
			args: []string{"-character=Max", "-style=formal", "-voice=en-US-AvaNeural", "-custom-avatar", "-autostart"},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, "Max", c.Avatar.Character)
				assert.Equal(t, "formal", c.Avatar.Style)
				assert.Equal(t, "en-US-AvaNeural", c.Avatar.Voice)
				assert.True(t, c.Avatar.IsCustom)
				assert.True(t, c.Autostart)
			},
		},
		{
			name: "given backend flags when parsed then the backend is overridden",
			args: []string{"-backend=https://avatar.example.com", "-metrics-port=0", "-record=/tmp/rec", "-debug"},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, "https://avatar.example.com", c.Backend.URL)
				assert.Equal(t, 0, c.Metrics.Port)
				assert.Equal(t, "/tmp/rec", c.Media.RecordDir)
				assert.True(t, c.Signal.Debug)
			},
		},
		{
			name:    "given extra args when parsed then return error",
			args:    []string{"-port=8080", "extra"},
			wantErr: true,
		},
		{
			name:    "given invalid flag format when parsed then return error",
			args:    []string{"-extra"},
			wantErr: true,
		},
		{
			name:    "given port flag without value when parsed then return error",
			args:    []string{"-port"},
			wantErr: true,
		},
		{
			name:    "given a missing config file when parsed then return error",
			args:    []string{"-config=/non/existent/config.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			got, err := cmd.Parse(&output, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
signal:
  port: 8081
backend:
  url: https://backend.example.com
  refresh_interval: 30s
session:
  settle_delay: 2s
avatar:
  character: Lori
  style: graceful
`), 0o600))

	t.Run("given a config file when parsed then its values are used", func(t *testing.T) {
		t.Setenv(cmd.EnvConfig, "")
		c, err := cmd.Parse(&bytes.Buffer{}, []string{"-config=" + path})
		require.NoError(t, err)

		assert.Equal(t, 8081, c.Signal.Port)
		assert.Equal(t, "https://backend.example.com", c.Backend.URL)
		assert.Equal(t, 30*time.Second, c.Backend.RefreshInterval)
		assert.Equal(t, app.DefaultRequestTimeout, c.Backend.Timeout)
		assert.Equal(t, 2*time.Second, c.Session.SettleDelay)
		assert.Equal(t, "Lori", c.Avatar.Character)
		assert.Equal(t, "graceful", c.Avatar.Style)
	})

	t.Run("given the config env and a port flag then the flag wins", func(t *testing.T) {
		t.Setenv(cmd.EnvConfig, path)
		c, err := cmd.Parse(&bytes.Buffer{}, []string{"-port=9000"})
		require.NoError(t, err)

		assert.Equal(t, 9000, c.Signal.Port)
		assert.Equal(t, "Lori", c.Avatar.Character)
	})
}

// Helper function to create a temporary file and return its path
func createTempFile(t *testing.T) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "testfile")
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestSetupConfig(t *testing.T) {
	t.Setenv(cmd.EnvConfig, "")
	keyFile := createTempFile(t)
	certFile := createTempFile(t)

	tests := []struct {
		name      string
		args      []string
		expected  signal.Config
		expectErr bool
	}{
		{
			name:     "given valid args when setup config then return valid config",
			args:     []string{"-port=8080", "-key=" + keyFile, "-cert=" + certFile},
			expected: signal.Config{Port: 8080, KeyFile: keyFile, CertFile: certFile},
		},
		{
			name:     "given no args when setup config then return default config",
			args:     []string{},
			expected: signal.Config{Port: signal.DefaultPort},
		},
		{
			name:      "given invalid port value when setup config then return error",
			args:      []string{"-port=70000"},
			expectErr: true,
		},
		{
			name:      "given non-existent cert file when setup config then return error",
			args:      []string{"-port=8080", "-key=" + keyFile, "-cert=/non/existent/cert.pem"},
			expectErr: true,
		},
		{
			name:      "given empty key file and non-empty cert file when setup config then return error",
			args:      []string{"-port=8080", "-cert=" + certFile},
			expectErr: true,
		},
		{
			name:      "given an unknown character when setup config then return error",
			args:      []string{"-character=nobody"},
			expectErr: true,
		},
		{
			name:      "given a relative backend url when setup config then return error",
			args:      []string{"-backend=/api"},
			expectErr: true,
		},
		{
			name:      "given invalid flag format when setup config then return error",
			args:      []string{"-extra"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := cmd.SetupConfig(&bytes.Buffer{}, tt.args)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, config.Signal)
		})
	}
}
