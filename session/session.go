// Package session drives the lifecycle of the avatar session: start, negotiation,
// activation, reconnect and stop.
package session

import (
	"avatar/broker"
	"avatar/media"
	"avatar/signaling"
	"avatar/types/avatar"
	"avatar/types/message"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// Errors
var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrNotActive      = errors.New("session is not active")
	ErrMicrophone     = errors.New("microphone unavailable")
	ErrNotRunning     = errors.New("session controller is not running")
)

// mailboxSize is the number of events buffered for the controller loop.
const mailboxSize = 64

// Snapshot is a consistent view of the session for readers outside the loop.
type Snapshot struct {
	State        State
	Speaking     bool
	ConnectionID string
	Selection    avatar.Selection
	Controls     message.Controls
}

// Controller owns the session state. Every mutation happens on the goroutine
// running Run; other goroutines talk to it through the mailbox.
type Controller struct {
	config     Config
	pool       Pool
	negotiator signaling.Negotiator
	backend    Backend
	hooks      Publisher
	metrics    Metrics
	recognizer Recognizer

	mailbox chan any
	done    chan struct{}
	runCtx  context.Context

	// owned by the loop
	state          State
	userClosed     bool
	attempt        uint64
	conn           media.Connection
	earlyFrame     string
	framed         bool
	settleTimer    *time.Timer
	selection      avatar.Selection
	speaking       bool
	resumeSpeaking bool
	micFailed      bool

	mu       sync.RWMutex
	snapshot Snapshot
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecognizer binds a speech recognizer that is stopped with the session.
// Nothing in this module sets one; it exists for embedders of the controller.
func WithRecognizer(r Recognizer) Option {
	return func(c *Controller) {
		c.recognizer = r
	}
}

// WithMetrics records transitions on m.
func WithMetrics(m Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// New creates a controller in the Idle state. Run must be called before Start.
func New(config Config, pool Pool, negotiator signaling.Negotiator, backend Backend, hooks Publisher, opts ...Option) *Controller {
	c := &Controller{
		config:     config,
		pool:       pool,
		negotiator: negotiator,
		backend:    backend,
		hooks:      hooks,
		mailbox:    make(chan any, mailboxSize),
		done:       make(chan struct{}),
		state:      Idle,
		selection:  avatar.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.snapshot = Snapshot{State: Idle, Selection: c.selection, Controls: c.controls()}
	return c
}

// Run processes events until ctx is done. The current connection is closed on return.
func (c *Controller) Run(ctx context.Context) {
	c.runCtx = ctx
	defer close(c.done)

	if c.metrics != nil {
		c.metrics.SetSessionState(c.state.String())
	}
	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			return
		case msg := <-c.mailbox:
			c.handle(msg)
		}
	}
}

func (c *Controller) handle(msg any) {
	switch m := msg.(type) {
	case startRequest:
		m.reply <- c.handleStart(m.selection)
	case stopRequest:
		m.reply <- c.handleStop()
	case attemptResult:
		c.handleAttemptResult(m)
	case iceStateChanged:
		c.handleICEState(m)
	case firstFrame:
		c.handleFirstFrame(m)
	case dataMessage:
		c.handleDataMessage(m)
	case settled:
		c.handleSettled(m)
	case microphoneFailed:
		c.handleMicrophoneFailed(m)
	default:
		log.Error().Str("module", "session").Msgf("unknown message %T", msg)
	}
}

// Start begins a session with sel. It returns once the attempt is under way, not
// when the session becomes Active.
func (c *Controller) Start(ctx context.Context, sel avatar.Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}
	return c.request(ctx, func(reply chan error) any {
		return startRequest{selection: sel, reply: reply}
	})
}

// Stop ends the session deliberately. No reconnect follows.
func (c *Controller) Stop(ctx context.Context) error {
	return c.request(ctx, func(reply chan error) any {
		return stopRequest{reply: reply}
	})
}

// ReportMicrophoneError surfaces a microphone failure and disables the mic control.
func (c *Controller) ReportMicrophoneError(err error) {
	c.post(microphoneFailed{err: err})
}

// Speak sends SSML to the backend while the session is Active.
func (c *Controller) Speak(ctx context.Context, ssml string) (string, error) {
	if c.State() != Active {
		return "", ErrNotActive
	}
	return c.backend.Speak(ctx, ssml)
}

// StopSpeaking interrupts the avatar while the session is Active.
func (c *Controller) StopSpeaking(ctx context.Context) error {
	if c.State() != Active {
		return ErrNotActive
	}
	return c.backend.StopSpeaking(ctx)
}

// State returns the current state.
func (c *Controller) State() State {
	return c.Snapshot().State
}

// Speaking reports whether the avatar is speaking.
func (c *Controller) Speaking() bool {
	return c.Snapshot().Speaking
}

// Snapshot returns the current view of the session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// OnICEStateChange implements media.Events.
func (c *Controller) OnICEStateChange(id string, state webrtc.ICEConnectionState) {
	c.post(iceStateChanged{id: id, state: state})
}

// OnFirstFrame implements media.Events.
func (c *Controller) OnFirstFrame(id string) {
	c.post(firstFrame{id: id})
}

// OnDataMessage implements media.Events.
func (c *Controller) OnDataMessage(id string, text string) {
	c.post(dataMessage{id: id, text: text})
}

func (c *Controller) request(ctx context.Context, build func(reply chan error) any) error {
	reply := make(chan error, 1)
	select {
	case c.mailbox <- build(reply):
	case <-c.done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post delivers msg to the loop. It reports false once the loop has exited.
func (c *Controller) post(msg any) bool {
	select {
	case c.mailbox <- msg:
		return true
	case <-c.done:
		return false
	}
}

func (c *Controller) handleStart(sel avatar.Selection) error {
	if c.state.running() {
		return ErrAlreadyStarted
	}
	c.userClosed = false
	c.micFailed = false
	c.speaking = false
	c.resumeSpeaking = false
	c.selection = sel
	log.Info().Str("module", "session").Str("character", sel.Character).Str("style", sel.Style).Msg("starting session")
	c.setState(Connecting, "start requested")
	c.launch(false)
	return nil
}

// launch runs one pop-and-negotiate attempt off the loop.
func (c *Controller) launch(reconnect bool) {
	c.attempt++
	n := c.attempt
	sel := c.selection
	sel.Reconnect = reconnect
	ctx := c.runCtx

	go func() {
		popCtx, cancel := context.WithTimeout(ctx, c.config.PopTimeout)
		conn, err := c.pool.PopOrWait(popCtx)
		cancel()
		if err != nil {
			c.post(attemptResult{attempt: n, reconnect: reconnect, err: fmt.Errorf("no ready connection: %w", err)})
			return
		}
		err = c.negotiator.Negotiate(ctx, conn, sel)
		if !c.post(attemptResult{attempt: n, reconnect: reconnect, conn: conn, err: err}) {
			closeAsync(conn)
		}
	}()
}

func (c *Controller) handleAttemptResult(r attemptResult) {
	if r.attempt != c.attempt || !c.state.running() {
		if r.conn != nil {
			log.Debug().Str("module", "session").Str("conn", r.conn.ID()).Msg("discarding stale attempt")
			closeAsync(r.conn)
		}
		return
	}

	if r.err != nil {
		if r.conn != nil {
			closeAsync(r.conn)
		}
		if c.metrics != nil {
			c.metrics.IncrementNegotiationFailures()
		}
		log.Error().Str("module", "session").Err(r.err).Bool("reconnect", r.reconnect).Msg("session attempt failed")
		c.publish(message.Status{Text: fmt.Sprintf("Failed to connect to avatar: %v", r.err), IsError: true})
		c.speaking = false
		c.setState(Idle, r.err.Error())
		return
	}

	c.conn = r.conn
	c.framed = false
	log.Info().Str("module", "session").Str("conn", r.conn.ID()).Bool("reconnect", r.reconnect).Msg("negotiation complete")
	if r.reconnect {
		c.setState(Connecting, "reconnected")
		if c.resumeSpeaking {
			c.resumeSpeaking = false
			go c.continueSpeaking()
		}
	}
	c.publish(message.Status{Text: "Connected, waiting for video"})
	c.publishSnapshot()

	if c.earlyFrame == r.conn.ID() {
		c.earlyFrame = ""
		c.handleFirstFrame(firstFrame{id: r.conn.ID()})
	}
}

func (c *Controller) continueSpeaking() {
	if err := c.backend.ContinueSpeaking(c.runCtx); err != nil {
		log.Warn().Str("module", "session").Err(err).Msg("failed to resume speech after reconnect")
	}
}

func (c *Controller) handleFirstFrame(m firstFrame) {
	if c.conn == nil {
		if c.state.running() {
			c.earlyFrame = m.id
		}
		return
	}
	if m.id != c.conn.ID() || c.framed {
		return
	}
	c.framed = true
	c.publish(message.Surface{ConnectionID: m.id, Shrunk: false})
	log.Debug().Str("module", "session").Str("conn", m.id).Dur("settle", c.config.SettleDelay).Msg("first video frame")

	n := c.attempt
	if c.config.SettleDelay <= 0 {
		c.handleSettled(settled{attempt: n})
		return
	}
	c.stopSettleTimer()
	c.settleTimer = time.AfterFunc(c.config.SettleDelay, func() {
		c.post(settled{attempt: n})
	})
}

func (c *Controller) handleSettled(m settled) {
	if m.attempt != c.attempt || c.state != Connecting || c.conn == nil {
		return
	}
	c.settleTimer = nil
	c.setState(Active, "video ready")
}

func (c *Controller) handleICEState(m iceStateChanged) {
	if c.conn == nil || m.id != c.conn.ID() {
		return
	}
	switch m.state {
	case webrtc.ICEConnectionStateDisconnected:
		c.publish(message.Surface{ConnectionID: m.id, Shrunk: true})
		c.reconnect(m.state)
	case webrtc.ICEConnectionStateFailed:
		c.reconnect(m.state)
	}
}

func (c *Controller) reconnect(cause webrtc.ICEConnectionState) {
	if c.userClosed || !c.state.running() {
		return
	}
	log.Warn().Str("module", "session").Str("conn", c.conn.ID()).Str("ice", cause.String()).Msg("connection dropped, reconnecting")
	if c.metrics != nil {
		c.metrics.IncrementReconnects()
	}

	c.resumeSpeaking = c.speaking
	c.speaking = false
	c.dropConnection()
	c.setState(Reconnecting, "ice "+cause.String())
	c.launch(true)
}

func (c *Controller) handleDataMessage(m dataMessage) {
	if c.conn == nil || m.id != c.conn.ID() {
		return
	}
	speaking, ok := media.ParseSpeaking(m.text)
	if !ok || speaking == c.speaking {
		return
	}
	c.speaking = speaking
	c.publish(message.Speaking{Speaking: speaking})
	c.publish(c.controls())
	c.publishSnapshot()
}

func (c *Controller) handleMicrophoneFailed(m microphoneFailed) {
	c.micFailed = true
	err := m.err
	if err == nil {
		err = ErrMicrophone
	}
	log.Warn().Str("module", "session").Err(err).Msg("microphone error")
	c.publish(message.Status{Text: fmt.Sprintf("Microphone error: %v", err), IsError: true})
	c.publish(c.controls())
	c.publishSnapshot()
}

func (c *Controller) handleStop() error {
	c.userClosed = true
	c.attempt++
	c.publish(message.Controls{})

	log.Info().Str("module", "session").Str("state", c.state.String()).Msg("stopping session")
	go c.teardown(c.state.running())

	c.speaking = false
	c.resumeSpeaking = false
	c.dropConnection()
	c.setState(Closed, "stopped by user")
	return nil
}

// teardown stops the recognizer and, when a session was running, notifies the
// backend. Failures are logged only.
func (c *Controller) teardown(running bool) {
	ctx, cancel := context.WithTimeout(c.runCtx, disconnectTimeout)
	defer cancel()

	if running {
		if err := c.backend.DisconnectAvatar(ctx); err != nil {
			log.Debug().Str("module", "session").Err(err).Msg("disconnect notification failed")
		}
	}
	if c.recognizer == nil {
		return
	}
	if err := c.recognizer.Stop(ctx); err != nil {
		log.Warn().Str("module", "session").Err(err).Msg("failed to stop recognizer")
	}
	if c.config.ReleaseRecognizer {
		if err := c.recognizer.Release(); err != nil {
			log.Warn().Str("module", "session").Err(err).Msg("failed to release recognizer")
		}
	}
}

func (c *Controller) dropConnection() {
	c.stopSettleTimer()
	c.framed = false
	c.earlyFrame = ""
	if c.conn == nil {
		return
	}
	closeAsync(c.conn)
	c.conn = nil
}

// closeAsync closes conn off the loop; pion reports the resulting state change
// through callbacks that post back to the mailbox.
func closeAsync(conn media.Connection) {
	go func() {
		if err := conn.Close(); err != nil {
			log.Debug().Str("module", "session").Str("conn", conn.ID()).Err(err).Msg("close connection")
		}
	}()
}

func (c *Controller) stopSettleTimer() {
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
}

func (c *Controller) shutdown() {
	c.attempt++
	c.dropConnection()
}

func (c *Controller) setState(s State, reason string) {
	if c.state != s {
		log.Info().Str("module", "session").Str("from", c.state.String()).Str("to", s.String()).Str("reason", reason).Msg("state changed")
	}
	c.state = s
	if c.metrics != nil {
		c.metrics.SetSessionState(s.String())
	}
	c.publish(message.State{State: s.String(), Reason: reason})
	c.publish(c.controls())
	c.publishSnapshot()
}

func (c *Controller) controls() message.Controls {
	return message.Controls{
		StartEnabled:        !c.state.running(),
		StopEnabled:         c.state.running(),
		MicEnabled:          c.state == Active && !c.micFailed,
		StopSpeakingEnabled: c.state == Active && c.speaking,
	}
}

func (c *Controller) publishSnapshot() {
	s := Snapshot{State: c.state, Speaking: c.speaking, Selection: c.selection, Controls: c.controls()}
	if c.conn != nil {
		s.ConnectionID = c.conn.ID()
	}
	c.mu.Lock()
	c.snapshot = s
	c.mu.Unlock()
}

func (c *Controller) publish(msg any) {
	if c.hooks == nil {
		return
	}
	if err := c.hooks.Publish(broker.HOOK, msg); err != nil {
		log.Debug().Str("module", "session").Err(err).Msg("failed to publish hook")
	}
}
