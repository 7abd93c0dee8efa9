package socket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 64 << 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// WebSocket wraps the gorilla/websocket connection. Writes are serialized because
// gorilla allows one concurrent writer.
type WebSocket struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// New upgrades the HTTP request to a WebSocket connection.
func New(w http.ResponseWriter, r *http.Request) (*WebSocket, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(maxMessageSize)
	return &WebSocket{
		conn: conn,
	}, nil
}

// Close closes the WebSocket connection.
func (s *WebSocket) Close() error {
	return s.conn.Close()
}

// WriteJSON sends data as a JSON text message.
func (s *WebSocket) WriteJSON(data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(data)
}

// ReadJSON reads the next JSON message into v.
func (s *WebSocket) ReadJSON(v any) error {
	return s.conn.ReadJSON(v)
}
