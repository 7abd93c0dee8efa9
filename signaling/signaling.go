// Package signaling performs the offer/answer exchange with the avatar service.
package signaling

import (
	"avatar/media"
	"avatar/types/avatar"
	"context"
	"errors"
	"fmt"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// ErrNegotiation is returned when the avatar service rejects or fails the exchange.
var ErrNegotiation = errors.New("negotiation failed")

// Signaler implements Negotiator on top of the backend's connectAvatar call.
type Signaler struct {
	connector Connector
}

// New creates a Signaler.
func New(connector Connector) *Signaler {
	return &Signaler{connector: connector}
}

// Negotiate posts the local description of conn with the selection headers and
// applies the returned answer.
func (s *Signaler) Negotiate(ctx context.Context, conn media.Connection, sel avatar.Selection) error {
	local := conn.LocalDescription()
	if local == nil {
		return fmt.Errorf("%w: connection %s has no local description", ErrNegotiation, conn.ID())
	}
	offer, err := Encode(*local)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNegotiation, err)
	}

	log.Debug().Str("module", "signaling").Str("conn", conn.ID()).Bool("reconnect", sel.Reconnect).Msg("posting offer")
	encoded, err := s.connector.ConnectAvatar(ctx, sel, offer)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNegotiation, err)
	}

	answer, err := Decode(encoded)
	if err != nil {
		return err
	}
	if answer.Type != webrtc.SDPTypeAnswer {
		return fmt.Errorf("%w: expected answer, got %s", ErrDecode, answer.Type)
	}
	if err := conn.SetRemoteDescription(answer); err != nil {
		return fmt.Errorf("%w: %w", ErrNegotiation, err)
	}
	log.Debug().Str("module", "signaling").Str("conn", conn.ID()).Msg("answer applied")
	return nil
}
