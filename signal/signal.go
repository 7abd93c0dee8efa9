// Package signal serves the control API used by the UI.
package signal

import (
	"avatar/signal/controller"
	"avatar/signal/middleware"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Signal contains the server and configuration.
type Signal struct {
	server *http.Server
	conf   Config
}

// New creates a new instance of Signal serving con.
func New(config Config, con *controller.Controller) *Signal {
	return &Signal{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Port),
			ReadHeaderTimeout: 2 * time.Second,
			Handler:           NewRouter(config, con),
		},
		conf: config,
	}
}

// NewRouter builds the gin engine with the control API routes.
func NewRouter(config Config, con *controller.Controller) *gin.Engine {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.CORS())
	con.Register(r)
	return r
}

// Start runs the control API until Shutdown is called.
func (s *Signal) Start() error {
	var err error
	if s.conf.TLS() {
		log.Info().Str("module", "signal").Int("port", s.conf.Port).Msg("starting server with TLS")
		err = s.server.ListenAndServeTLS(s.conf.CertFile, s.conf.KeyFile)
	} else {
		log.Info().Str("module", "signal").Int("port", s.conf.Port).Msg("starting server without TLS")
		err = s.server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones.
func (s *Signal) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
