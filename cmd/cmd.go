// Package cmd parse args to configure application.
package cmd

import (
	"avatar/app"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Run starts the application.
func Run() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := SetupConfig(os.Stderr, os.Args[1:])
	if err != nil {
		log.Error().Str("module", "cmd").Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	if config.Signal.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	a, err := app.New(config)
	if err != nil {
		log.Error().Str("module", "cmd").Err(err).Msg("failed to create app")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.Run(ctx); err != nil {
		log.Error().Str("module", "cmd").Err(err).Msg("app stopped")
		stop()
		os.Exit(1)
	}
}

// SetupConfig sets up and returns the configuration.
func SetupConfig(w io.Writer, args []string) (app.Config, error) {
	config, err := Parse(w, args)
	if err != nil {
		return config, err
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Parse parses the command line arguments. Flags that are set override the config
// file, which overrides the defaults.
func Parse(w io.Writer, args []string) (app.Config, error) {
	def := app.DefaultConfig()

	var (
		path                     string
		port, metricsPort        int
		debug, custom, autostart bool
		key, cert, backend       string
		record                   string
		character, style, voice  string
	)
	fs := flag.NewFlagSet("avatar", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&path, "config", os.Getenv(EnvConfig), "config file path")
	fs.IntVar(&port, "port", def.Signal.Port, "control API listening port")
	fs.BoolVar(&debug, "debug", false, "debug mode")
	fs.StringVar(&key, "key", "", "key file path")
	fs.StringVar(&cert, "cert", "", "cert file path")
	fs.StringVar(&backend, "backend", def.Backend.URL, "avatar backend base URL")
	fs.IntVar(&metricsPort, "metrics-port", def.Metrics.Port, "metrics port, 0 disables the metrics server")
	fs.StringVar(&record, "record", "", "record inbound media into this directory")
	fs.StringVar(&character, "character", def.Avatar.Character, "avatar character")
	fs.StringVar(&style, "style", def.Avatar.Style, "avatar style")
	fs.StringVar(&voice, "voice", def.Avatar.Voice, "TTS voice")
	fs.BoolVar(&custom, "custom-avatar", false, "character is a custom avatar")
	fs.BoolVar(&autostart, "autostart", false, "start a session once the first relay credential arrives")

	if err := fs.Parse(args); err != nil {
		return app.Config{}, fmt.Errorf("failed to parse args: %w", err)
	}
	if fs.NArg() != 0 {
		return app.Config{}, errors.New("some args are not parsed")
	}

	config, err := Load(path)
	if err != nil {
		return app.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			config.Signal.Port = port
		case "debug":
			config.Signal.Debug = debug
		case "key":
			config.Signal.KeyFile = key
		case "cert":
			config.Signal.CertFile = cert
		case "backend":
			config.Backend.URL = backend
		case "metrics-port":
			config.Metrics.Port = metricsPort
		case "record":
			config.Media.RecordDir = record
		case "character":
			config.Avatar.Character = character
		case "style":
			config.Avatar.Style = style
		case "voice":
			config.Avatar.Voice = voice
		case "custom-avatar":
			config.Avatar.IsCustom = custom
		case "autostart":
			config.Autostart = autostart
		}
	})
	return config, nil
}
