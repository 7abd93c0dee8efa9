package session

import (
	"avatar/broker"
	"avatar/media"
	"context"
)

// Pool hands out ready connections.
//
//go:generate mockgen -destination=mock_session.go -package=session . Pool,Backend,Recognizer
type Pool interface {
	PopOrWait(ctx context.Context) (media.Connection, error)
}

// Backend is the part of the avatar backend the controller calls outside negotiation.
type Backend interface {
	DisconnectAvatar(ctx context.Context) error
	ContinueSpeaking(ctx context.Context) error
	Speak(ctx context.Context, ssml string) (string, error)
	StopSpeaking(ctx context.Context) error
}

// Recognizer is the speech recognition capability bound to the session.
// It is a hook for embedders: the app assembly has no recognizer and leaves it unset.
type Recognizer interface {
	Stop(ctx context.Context) error
	Release() error
}

// Publisher receives lifecycle hooks.
type Publisher interface {
	Publish(topic broker.TOPIC, message any) error
}

// Metrics records session transitions.
type Metrics interface {
	SetSessionState(state string)
	IncrementReconnects()
	IncrementNegotiationFailures()
}
