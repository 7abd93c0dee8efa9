// Package controller handles the control API: REST commands and the hook stream.
package controller

import (
	"avatar/session"
	"avatar/types/avatar"
	"context"
)

// Session is the session controller as seen by the control API.
//
//go:generate mockgen -destination=mock_controller.go -package=controller . Session
type Session interface {
	Start(ctx context.Context, sel avatar.Selection) error
	Stop(ctx context.Context) error
	Speak(ctx context.Context, ssml string) (string, error)
	StopSpeaking(ctx context.Context) error
	ReportMicrophoneError(err error)
	Snapshot() session.Snapshot
}

// Metrics counts hook stream connections.
type Metrics interface {
	IncrementWebSocketConnections()
	DecrementWebSocketConnections()
}
