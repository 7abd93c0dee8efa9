package app_test

import (
	"avatar/app"
	"avatar/signal"
	"avatar/types/avatar"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("given the default config then it is valid", func(t *testing.T) {
		config := app.DefaultConfig()
		assert.NoError(t, config.Validate())
	})

	tests := []struct {
		name   string
		modify func(*app.Config)
		want   error
	}{
		{"given a relative backend url then it is rejected", func(c *app.Config) { c.Backend.URL = "/api" }, app.ErrInvalidBackendURL},
		{"given a non http backend url then it is rejected", func(c *app.Config) { c.Backend.URL = "ftp://host" }, app.ErrInvalidBackendURL},
		{"given an invalid port then it is rejected", func(c *app.Config) { c.Signal.Port = 0 }, signal.ErrInvalidPort},
		{"given an unknown character then it is rejected", func(c *app.Config) { c.Avatar.Character = "nobody" }, avatar.ErrUnknownAvatar},
		{"given a custom character then the catalog is skipped", func(c *app.Config) {
			c.Avatar = avatar.Selection{Character: "mine", Style: "any", IsCustom: true}
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := app.DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("given a zero refresh interval then it is rejected", func(t *testing.T) {
		config := app.DefaultConfig()
		config.Backend.RefreshInterval = 0
		assert.Error(t, config.Validate())
	})
}

func TestNew(t *testing.T) {
	t.Run("given no client id then one is generated", func(t *testing.T) {
		a, err := app.New(app.DefaultConfig())
		require.NoError(t, err)

		_, err = uuid.Parse(a.ClientID())
		assert.NoError(t, err)
	})

	t.Run("given a client id then it is kept", func(t *testing.T) {
		config := app.DefaultConfig()
		config.Backend.ClientID = "fixed"
		a, err := app.New(config)
		require.NoError(t, err)
		assert.Equal(t, "fixed", a.ClientID())
	})

	t.Run("given an inverted port range then the webrtc api is refused", func(t *testing.T) {
		config := app.DefaultConfig()
		config.Media.MinUDPPort, config.Media.MaxUDPPort = 6000, 5000
		_, err := app.New(config)
		assert.Error(t, err)
	})
}
