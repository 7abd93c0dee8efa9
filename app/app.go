// Package app wires the avatar session client together.
package app

import (
	"avatar/broker"
	"avatar/client"
	"avatar/ice"
	"avatar/media"
	"avatar/metric"
	"avatar/pool"
	"avatar/session"
	"avatar/signal"
	"avatar/signal/controller"
	"avatar/signaling"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// shutdownTimeout bounds the graceful stop of the control API.
const shutdownTimeout = 5 * time.Second

// App contains the components and configuration.
type App struct {
	config  Config
	broker  *broker.Broker
	metric  *metric.Metrics
	client  *client.Client
	source  *ice.Source
	factory *media.Factory
	pool    *pool.Pool
	session *session.Controller
	signal  *signal.Signal

	runCtx    context.Context
	autostart sync.Once
}

// New creates a new instance of App. Nothing runs until Run is called.
func New(config Config) (*App, error) {
	api, err := media.NewAPI(config.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to create webrtc api: %w", err)
	}

	a := &App{
		config: config,
		broker: broker.New(),
		metric: metric.New(config.Metrics),
		runCtx: context.Background(),
	}
	a.client = client.New(config.Backend.URL, config.Backend.ClientID, &http.Client{Timeout: config.Backend.Timeout})
	a.pool = pool.New(a.refill, a.metric)
	a.session = session.New(config.Session, a.pool, signaling.New(a.client), a.client, a.broker,
		session.WithMetrics(a.metric))
	a.factory = media.NewFactory(api, a.session, a.metric, config.Media)
	a.source = ice.New(a.client, a.onCredential,
		ice.WithInterval(config.Backend.RefreshInterval),
		ice.WithMetrics(a.metric))

	con := controller.New(a.session, a.broker, config.Avatar, a.client.ClientID(),
		controller.WithMetrics(a.metric),
		controller.WithDebug(config.Signal.Debug))
	a.signal = signal.New(config.Signal, con)
	return a, nil
}

// ClientID returns the identifier sent to the backend.
func (a *App) ClientID() string {
	return a.client.ClientID()
}

// Run starts every component and blocks until ctx is done or the control API fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.runCtx = ctx

	log.Info().Str("module", "app").Str("client", a.ClientID()).Str("backend", a.config.Backend.URL).Msg("starting")

	a.metric.Start()
	a.metric.UpdateSystemMetrics(ctx)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.session.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		a.source.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.signal.Start()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	a.stop()
	cancel()
	wg.Wait()
	a.pool.Close()
	a.broker.Close()
	if err != nil {
		return fmt.Errorf("failed to run signal server: %w", err)
	}
	return nil
}

func (a *App) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.signal.Shutdown(ctx); err != nil {
		log.Warn().Str("module", "app").Err(err).Msg("failed to stop signal server")
	}
	if err := a.metric.Stop(); err != nil {
		log.Warn().Str("module", "app").Err(err).Msg("failed to stop metrics server")
	}
}

// onCredential replaces the pooled connection with one built for cred.
func (a *App) onCredential(cred ice.Credential) {
	log.Debug().Str("module", "app").Int("urls", len(cred.URLs)).Msg("relay credential refreshed")
	a.build(cred)

	if !a.config.Autostart {
		return
	}
	a.autostart.Do(func() {
		go func() {
			if err := a.session.Start(a.runCtx, a.config.Avatar); err != nil {
				log.Error().Str("module", "app").Err(err).Msg("autostart failed")
			}
		}()
	})
}

// refill builds a replacement after a pop with the latest credential.
func (a *App) refill() {
	cred, ok := a.source.Current()
	if !ok {
		return
	}
	a.build(cred)
}

func (a *App) build(cred ice.Credential) {
	if _, err := a.factory.Build(cred, a.push); err != nil {
		log.Error().Str("module", "app").Err(err).Msg("failed to build connection")
	}
}

func (a *App) push(conn media.Connection) {
	if err := a.pool.Push(conn); err != nil {
		log.Debug().Str("module", "app").Str("conn", conn.ID()).Err(err).Msg("connection not pooled")
	}
}
