package cmd

import (
	"avatar/app"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "AVATAR_CONFIG"

// envPrefix prefixes environment overrides, e.g. AVATAR_BACKEND_URL.
const envPrefix = "AVATAR"

// Load reads the YAML file at path on top of the defaults. An empty path only
// applies defaults and environment overrides.
func Load(path string) (app.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, app.DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return app.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var config app.Config
	if err := v.Unmarshal(&config); err != nil {
		return app.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

func setDefaults(v *viper.Viper, c app.Config) {
	v.SetDefault("signal.port", c.Signal.Port)
	v.SetDefault("signal.debug", c.Signal.Debug)
	v.SetDefault("signal.cert_file", c.Signal.CertFile)
	v.SetDefault("signal.key_file", c.Signal.KeyFile)

	v.SetDefault("metrics.port", c.Metrics.Port)
	v.SetDefault("metrics.path", c.Metrics.Path)

	v.SetDefault("media.min_udp_port", c.Media.MinUDPPort)
	v.SetDefault("media.max_udp_port", c.Media.MaxUDPPort)
	v.SetDefault("media.gather_timeout", c.Media.GatherTimeout)
	v.SetDefault("media.record_dir", c.Media.RecordDir)

	v.SetDefault("session.settle_delay", c.Session.SettleDelay)
	v.SetDefault("session.pop_timeout", c.Session.PopTimeout)
	v.SetDefault("session.release_recognizer", c.Session.ReleaseRecognizer)

	v.SetDefault("backend.url", c.Backend.URL)
	v.SetDefault("backend.client_id", c.Backend.ClientID)
	v.SetDefault("backend.timeout", c.Backend.Timeout)
	v.SetDefault("backend.refresh_interval", c.Backend.RefreshInterval)

	v.SetDefault("avatar.character", c.Avatar.Character)
	v.SetDefault("avatar.style", c.Avatar.Style)
	v.SetDefault("avatar.custom", c.Avatar.IsCustom)
	v.SetDefault("avatar.voice", c.Avatar.Voice)
	v.SetDefault("avatar.custom_voice_endpoint_id", c.Avatar.CustomVoiceEndpointID)
	v.SetDefault("avatar.speaker_profile_id", c.Avatar.SpeakerProfileID)

	v.SetDefault("autostart", c.Autostart)
}
