package media

import "github.com/pion/webrtc/v4"

// Connection is a peer connection whose offer is ready to be negotiated.
//
//go:generate mockgen -destination=mock_media.go -package=media . Connection,Events
type Connection interface {
	ID() string
	LocalDescription() *webrtc.SessionDescription
	SetRemoteDescription(desc webrtc.SessionDescription) error
	Gathered() bool
	Close() error
}

// Events receives what happens on a connection. Every call carries the connection
// id so that events of a replaced connection can be told apart.
type Events interface {
	OnICEStateChange(id string, state webrtc.ICEConnectionState)
	OnFirstFrame(id string)
	OnDataMessage(id string, text string)
}

// Metrics records connection counts and inbound traffic.
type Metrics interface {
	IncrementWebRTCConnections()
	DecrementWebRTCConnections()
	AddInboundBytes(kind string, n int)
}
