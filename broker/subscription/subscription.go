package subscription

import (
	"errors"
	"sync"
)

// QueueSize is the number of undelivered messages a subscription holds.
const QueueSize = 64

// Errors
var (
	ErrBackpressure = errors.New("subscription queue is full")
	ErrClosed       = errors.New("subscription is closed")
)

type Subscription struct {
	mu     sync.RWMutex
	closed bool
	queue  chan any
}

func New() *Subscription {
	return &Subscription{
		queue: make(chan any, QueueSize),
	}
}

// TrySend queues message without blocking.
func (s *Subscription) TrySend(message any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	select {
	case s.queue <- message:
		return nil
	default:
		return ErrBackpressure
	}
}

// Receive blocks for the next message. It returns nil once the subscription is closed.
func (s *Subscription) Receive() any {
	msg, ok := <-s.queue
	if !ok {
		return nil
	}
	return msg
}

// C exposes the queue for use in select statements.
func (s *Subscription) C() <-chan any {
	return s.queue
}

func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.queue)
}
