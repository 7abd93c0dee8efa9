// Package metric provides Prometheus metrics collection and monitoring.
package metric

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// SampleInterval is how often system metrics are collected.
const SampleInterval = 5 * time.Second

// Session states reported by the session_state gauge.
var States = []string{"idle", "connecting", "active", "reconnecting", "closed"}

// Metrics contains the Prometheus metrics server and registered custom metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpServer *http.Server
	config     Config
	registry   *prometheus.Registry

	sessionState         *prometheus.GaugeVec
	webRTCConnections    prometheus.Gauge
	webSocketConnections prometheus.Gauge
	poolEvictions        prometheus.Counter
	reconnects           prometheus.Counter
	negotiationFailures  prometheus.Counter
	credentialFailures   prometheus.Counter
	inboundBytes         *prometheus.CounterVec
	cpuUsage             prometheus.Gauge
	memoryUsage          prometheus.Gauge
}

// New creates a new Metrics instance with the specified configuration.
func New(config Config) *Metrics {
	m := &Metrics{
		config:   config,
		registry: prometheus.NewRegistry(),
		sessionState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "avatar_session_state",
			Help: "1 for the current session state, 0 otherwise.",
		}, []string{"state"}),
		webRTCConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "avatar_webrtc_connections",
			Help: "Current number of open peer connections.",
		}),
		webSocketConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "avatar_websocket_connections",
			Help: "Current number of hook stream subscribers.",
		}),
		poolEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avatar_pool_evictions_total",
			Help: "Ready connections replaced by a newer one.",
		}),
		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avatar_reconnects_total",
			Help: "Reconnects triggered by ICE disconnect or failure.",
		}),
		negotiationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avatar_negotiation_failures_total",
			Help: "Failed offer/answer exchanges.",
		}),
		credentialFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avatar_credential_refresh_failures_total",
			Help: "Failed relay credential fetches.",
		}),
		inboundBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avatar_inbound_bytes_total",
			Help: "RTP payload bytes received per track kind.",
		}, []string{"kind"}),
		cpuUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cpu_usage_percentage",
			Help: "CPU usage percentage.",
		}),
		memoryUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "memory_usage_bytes",
			Help: "Current memory usage in bytes.",
		}),
	}
	m.registerMetrics()
	return m
}

func (m *Metrics) registerMetrics() {
	m.registry.MustRegister(
		m.sessionState,
		m.webRTCConnections,
		m.webSocketConnections,
		m.poolEvictions,
		m.reconnects,
		m.negotiationFailures,
		m.credentialFailures,
		m.inboundBytes,
		m.cpuUsage,
		m.memoryUsage,
	)
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Start initializes and starts the metrics HTTP server. A zero port disables it.
func (m *Metrics) Start() {
	if m == nil || m.config.Port == 0 {
		return
	}
	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())
	m.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", m.config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("module", "metric").Int("port", m.config.Port).Str("path", m.config.Path).Msg("starting metrics server")
		if err := m.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Str("module", "metric").Err(err).Msg("metrics server stopped")
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (m *Metrics) Stop() error {
	if m == nil || m.httpServer == nil {
		return nil
	}
	log.Info().Str("module", "metric").Int("port", m.config.Port).Msg("stopping metrics server")
	return m.httpServer.Close()
}

// UpdateSystemMetrics samples CPU and memory usage until ctx is done.
func (m *Metrics) UpdateSystemMetrics(ctx context.Context) {
	if m == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(SampleInterval)
		defer ticker.Stop()
		for {
			m.sampleSystem()
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (m *Metrics) sampleSystem() {
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		m.cpuUsage.Set(percents[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		m.memoryUsage.Set(float64(vm.Used))
	}
}

// SetSessionState marks state as the current session state.
func (m *Metrics) SetSessionState(state string) {
	if m == nil {
		return
	}
	for _, s := range States {
		v := 0.0
		if s == state {
			v = 1
		}
		m.sessionState.WithLabelValues(s).Set(v)
	}
}

// IncrementWebRTCConnections increments the WebRTC connection count.
func (m *Metrics) IncrementWebRTCConnections() {
	if m == nil {
		return
	}
	m.webRTCConnections.Inc()
}

// DecrementWebRTCConnections decrements the WebRTC connection count.
func (m *Metrics) DecrementWebRTCConnections() {
	if m == nil {
		return
	}
	m.webRTCConnections.Dec()
}

// IncrementWebSocketConnections increments the WebSocket connection count.
func (m *Metrics) IncrementWebSocketConnections() {
	if m == nil {
		return
	}
	m.webSocketConnections.Inc()
}

// DecrementWebSocketConnections decrements the WebSocket connection count.
func (m *Metrics) DecrementWebSocketConnections() {
	if m == nil {
		return
	}
	m.webSocketConnections.Dec()
}

func (m *Metrics) IncrementPoolEvictions() {
	if m == nil {
		return
	}
	m.poolEvictions.Inc()
}

func (m *Metrics) IncrementReconnects() {
	if m == nil {
		return
	}
	m.reconnects.Inc()
}

func (m *Metrics) IncrementNegotiationFailures() {
	if m == nil {
		return
	}
	m.negotiationFailures.Inc()
}

func (m *Metrics) IncrementCredentialFailures() {
	if m == nil {
		return
	}
	m.credentialFailures.Inc()
}

// AddInboundBytes adds n received bytes for a track kind ("audio" or "video").
func (m *Metrics) AddInboundBytes(kind string, n int) {
	if m == nil {
		return
	}
	m.inboundBytes.WithLabelValues(kind).Add(float64(n))
}
