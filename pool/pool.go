// Package pool holds the single pre-warmed connection waiting for a session.
package pool

import (
	"avatar/media"
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClosed is returned once the pool has been closed.
var ErrClosed = errors.New("pool is closed")

// Metrics records evictions.
type Metrics interface {
	IncrementPoolEvictions()
}

// Pool holds at most one ready connection. Pushing a newer connection evicts and
// closes the current one.
type Pool struct {
	refill  func()
	metrics Metrics

	mu     sync.Mutex
	conn   media.Connection
	ready  chan struct{}
	closed bool
}

// New creates an empty pool. refill runs in its own goroutine after every
// successful pop and may be nil.
func New(refill func(), metrics Metrics) *Pool {
	return &Pool{
		refill:  refill,
		metrics: metrics,
		ready:   make(chan struct{}),
	}
}

// Push stores conn and wakes every waiter. A closed pool closes conn and returns ErrClosed.
func (p *Pool) Push(conn media.Connection) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = conn.Close()
		return ErrClosed
	}
	evicted := p.conn
	p.conn = conn
	close(p.ready)
	p.ready = make(chan struct{})
	p.mu.Unlock()

	if evicted != nil {
		log.Debug().Str("module", "pool").Str("evicted", evicted.ID()).Str("conn", conn.ID()).Msg("replacing ready connection")
		if p.metrics != nil {
			p.metrics.IncrementPoolEvictions()
		}
		if err := evicted.Close(); err != nil {
			log.Warn().Str("module", "pool").Str("conn", evicted.ID()).Err(err).Msg("failed to close evicted connection")
		}
	}
	return nil
}

// Pop takes the ready connection, if any.
func (p *Pool) Pop() (media.Connection, bool) {
	p.mu.Lock()
	conn := p.conn
	p.conn = nil
	p.mu.Unlock()

	if conn == nil {
		return nil, false
	}
	if p.refill != nil {
		go p.refill()
	}
	return conn, true
}

// PopOrWait takes the ready connection, waiting for a push until ctx is done.
func (p *Pool) PopOrWait(ctx context.Context) (media.Connection, error) {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return nil, ErrClosed
		}
		ready := p.ready
		p.mu.Unlock()

		if conn, ok := p.Pop(); ok {
			return conn, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ready:
		}
	}
}

// Len returns 1 when a connection is ready and 0 otherwise.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return 0
	}
	return 1
}

// Close closes the ready connection and fails current and future waits.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	conn := p.conn
	p.conn = nil
	close(p.ready)
	p.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}
