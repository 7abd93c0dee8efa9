package session

import (
	"avatar/media"
	"avatar/types/avatar"

	"github.com/pion/webrtc/v4"
)

// Messages handled by the controller loop.
type (
	startRequest struct {
		selection avatar.Selection
		reply     chan error
	}

	stopRequest struct {
		reply chan error
	}

	attemptResult struct {
		attempt   uint64
		reconnect bool
		conn      media.Connection
		err       error
	}

	iceStateChanged struct {
		id    string
		state webrtc.ICEConnectionState
	}

	firstFrame struct {
		id string
	}

	dataMessage struct {
		id   string
		text string
	}

	settled struct {
		attempt uint64
	}

	microphoneFailed struct {
		err error
	}
)
