package signaling

import (
	"avatar/media"
	"avatar/types/avatar"
	"context"
)

// Negotiator exchanges the offer of a connection for the avatar service's answer.
//
//go:generate mockgen -destination=mock_signaling.go -package=signaling . Negotiator
type Negotiator interface {
	Negotiate(ctx context.Context, conn media.Connection, sel avatar.Selection) error
}

// Connector posts an encoded offer and returns the encoded answer.
type Connector interface {
	ConnectAvatar(ctx context.Context, sel avatar.Selection, offer string) (string, error)
}
