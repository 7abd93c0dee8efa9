// Package response provides data types for server response to client.
package response

// IceToken is the relay credential returned by GET /api/getIceToken.
type IceToken struct {
	Urls     []string `json:"Urls"`
	Username string   `json:"Username"`
	Password string   `json:"Password"`
}

// Session is the control API view of the session.
type Session struct {
	State    string `json:"state"`
	Speaking bool   `json:"speaking"`
	ClientID string `json:"clientId"`
}

// Error is the body of every failed control API request.
type Error struct {
	Error string `json:"error"`
}

// Speak is returned when SSML was accepted by the backend.
type Speak struct {
	ResultID string `json:"resultId"`
}
