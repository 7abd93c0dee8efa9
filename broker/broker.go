// Package broker delivers session hooks from the controller to any number of subscribers.
package broker

import (
	"avatar/broker/channel"
	"avatar/broker/subscription"
	"errors"
	"sync"
)

// Errors
var (
	ErrUnknownTopic = errors.New("unknown topic")
	ErrClosed       = errors.New("broker is closed")
)

// Broker is an in-process pub/sub with one channel per topic.
type Broker struct {
	mu       sync.RWMutex
	closed   bool
	channels map[TOPIC]*channel.Channel
}

// New creates a broker with every known topic registered.
func New() *Broker {
	return &Broker{
		channels: map[TOPIC]*channel.Channel{
			HOOK: channel.New(),
		},
	}
}

// Publish delivers message to every current subscriber of topic.
func (b *Broker) Publish(topic TOPIC, message any) error {
	ch, err := b.channel(topic)
	if err != nil {
		return err
	}
	ch.SendAll(message)
	return nil
}

// Subscribe returns a new subscription to topic.
func (b *Broker) Subscribe(topic TOPIC) (*subscription.Subscription, error) {
	ch, err := b.channel(topic)
	if err != nil {
		return nil, err
	}
	sub := subscription.New()
	ch.AddSubscription(sub)
	return sub, nil
}

// Unsubscribe removes and closes sub.
func (b *Broker) Unsubscribe(topic TOPIC, sub *subscription.Subscription) error {
	ch, err := b.channel(topic)
	if err != nil {
		return err
	}
	ch.RemoveSubscription(sub)
	return nil
}

// Close closes every subscription. Later calls fail with ErrClosed.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.channels {
		ch.Close()
	}
}

func (b *Broker) channel(topic TOPIC) (*channel.Channel, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, ErrClosed
	}
	ch, ok := b.channels[topic]
	if !ok {
		return nil, ErrUnknownTopic
	}
	return ch, nil
}
