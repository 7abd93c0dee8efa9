package media

import (
	"avatar/media/stream"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// gatherer fires done exactly once: on the end-of-candidates signal or when the
// timeout elapses, whichever comes first. done may call stop.
type gatherer struct {
	fired atomic.Bool
	timer *time.Timer
	done  func(timedOut bool)
}

func newGatherer(timeout time.Duration, done func(timedOut bool)) *gatherer {
	g := &gatherer{done: done}
	g.timer = time.AfterFunc(timeout, func() { g.fire(true) })
	return g
}

// candidate handles pion's OnICECandidate. A nil candidate ends gathering.
func (g *gatherer) candidate(c *webrtc.ICECandidate) {
	if c == nil {
		g.fire(false)
	}
}

func (g *gatherer) fire(timedOut bool) {
	if !g.fired.CompareAndSwap(false, true) {
		return
	}
	if !timedOut {
		g.timer.Stop()
	}
	g.done(timedOut)
}

// stop prevents done from running if it has not run yet.
func (g *gatherer) stop() {
	if g.fired.CompareAndSwap(false, true) {
		g.timer.Stop()
	}
}

// PendingConnection wraps a peer connection from creation until it is closed.
type PendingConnection struct {
	id       string
	pc       *webrtc.PeerConnection
	sinks    *stream.Sinks
	gatherer *gatherer
	metrics  Metrics

	gathered  atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// ID returns the connection identifier carried by every event.
func (c *PendingConnection) ID() string {
	return c.id
}

// LocalDescription returns the offer including the gathered candidates.
func (c *PendingConnection) LocalDescription() *webrtc.SessionDescription {
	return c.pc.LocalDescription()
}

// SetRemoteDescription applies the answer of the avatar service.
func (c *PendingConnection) SetRemoteDescription(desc webrtc.SessionDescription) error {
	if c.closed.Load() {
		return fmt.Errorf("connection %s: %w", c.id, webrtc.ErrConnectionClosed)
	}
	if err := c.pc.SetRemoteDescription(desc); err != nil {
		return fmt.Errorf("failed to set remote description: %w", err)
	}
	return nil
}

// Gathered reports whether ICE gathering has finished or timed out.
func (c *PendingConnection) Gathered() bool {
	return c.gathered.Load()
}

// Close releases the peer connection and its sinks. Only the first call has an effect.
func (c *PendingConnection) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.gatherer.stop()
		c.sinks.Close()
		c.closeErr = c.pc.Close()
		if c.metrics != nil {
			c.metrics.DecrementWebRTCConnections()
		}
		log.Debug().Str("module", "media").Str("conn", c.id).Msg("connection closed")
	})
	return c.closeErr
}
