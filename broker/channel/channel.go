// Package channel provides the implementation of message channels.
package channel

import (
	"avatar/broker/subscription"
	"sync"

	"github.com/rs/zerolog/log"
)

// Channel represents a message channel that can have multiple subscribers.
type Channel struct {
	mu   sync.RWMutex
	subs []*subscription.Subscription
}

// New creates and initializes a new Channel instance.
func New() *Channel {
	return &Channel{
		subs: make([]*subscription.Subscription, 0),
	}
}

// SendAll sends a message to every subscriber. A subscriber whose queue is full
// misses the message; the others keep their order.
func (c *Channel) SendAll(message any) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, sub := range c.subs {
		if err := sub.TrySend(message); err != nil {
			log.Warn().Str("module", "broker").Err(err).Msg("dropping message for slow subscriber")
		}
	}
}

// AddSubscription adds a new Subscription Channel.
func (c *Channel) AddSubscription(sub *subscription.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subs = append(c.subs, sub)
}

// RemoveSubscription removes a Subscription Channel.
func (c *Channel) RemoveSubscription(sub *subscription.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			sub.Close()
			return
		}
	}
}

// Len returns the number of subscribers.
func (c *Channel) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// Close closes and drops every subscription.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sub := range c.subs {
		sub.Close()
	}
	c.subs = nil
}
