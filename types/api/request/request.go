// Package request contains api request type
package request

import "avatar/types/avatar"

// Start is the optional body of a session start request. A nil Selection keeps the
// configured default.
type Start struct {
	Selection *avatar.Selection `json:"selection,omitempty"`
}

// Speak is the body of a speak request.
type Speak struct {
	Text string `json:"text"`
}

// MicrophoneError reports that the UI could not open the microphone.
type MicrophoneError struct {
	Message string `json:"message"`
}
