package broker

import "avatar/broker/subscription"

// Topics
const (
	// HOOK carries the session lifecycle hooks published for the UI.
	HOOK TOPIC = iota
)

// TOPIC identifies a broker channel.
type TOPIC int

// Publisher publishes messages on a topic.
type Publisher interface {
	Publish(topic TOPIC, message any) error
}

// Subscriber subscribes to and unsubscribes from a topic.
type Subscriber interface {
	Subscribe(topic TOPIC) (*subscription.Subscription, error)
	Unsubscribe(topic TOPIC, sub *subscription.Subscription) error
}
