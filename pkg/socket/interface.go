// Package socket wraps WebSocket connections used by the control API.
package socket

// Socket is a JSON message connection.
//
//go:generate mockgen -destination=mock_socket.go -package=socket . Socket
type Socket interface {
	Close() error
	WriteJSON(data any) error
	ReadJSON(v any) error
}
