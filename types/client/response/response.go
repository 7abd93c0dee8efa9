// Package response provides data types for hook frames sent to UI clients.
package response

import (
	"avatar/types/message"
	"fmt"
)

// Constants for response types
const (
	STATE    = "STATE"
	CONTROLS = "CONTROLS"
	STATUS   = "STATUS"
	SPEAKING = "SPEAKING"
	SURFACE  = "SURFACE"
	ERROR    = "ERROR"
)

// State is data type for session state changes
type State struct {
	Type   string `json:"type"`
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

// Controls is data type for enabling and disabling UI affordances
type Controls struct {
	Type                string `json:"type"`
	StartEnabled        bool   `json:"start_enabled"`
	StopEnabled         bool   `json:"stop_enabled"`
	MicEnabled          bool   `json:"mic_enabled"`
	StopSpeakingEnabled bool   `json:"stop_speaking_enabled"`
}

// Status is data type for status text
type Status struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	IsError bool   `json:"is_error"`
}

// Speaking is data type for speaking state
type Speaking struct {
	Type     string `json:"type"`
	Speaking bool   `json:"speaking"`
}

// Surface is data type for the video surface cue
type Surface struct {
	Type         string `json:"type"`
	ConnectionID string `json:"connection_id"`
	Shrunk       bool   `json:"shrunk"`
}

// Error is data type for rejected commands
type Error struct {
	Type      string `json:"type"`
	RequestID int    `json:"request_id"`
	Message   string `json:"message"`
}

// FromMessage converts a broker message into its wire frame.
func FromMessage(msg any) (any, error) {
	switch m := msg.(type) {
	case message.State:
		return State{Type: STATE, State: m.State, Reason: m.Reason}, nil
	case message.Controls:
		return Controls{
			Type:                CONTROLS,
			StartEnabled:        m.StartEnabled,
			StopEnabled:         m.StopEnabled,
			MicEnabled:          m.MicEnabled,
			StopSpeakingEnabled: m.StopSpeakingEnabled,
		}, nil
	case message.Status:
		return Status{Type: STATUS, Text: m.Text, IsError: m.IsError}, nil
	case message.Speaking:
		return Speaking{Type: SPEAKING, Speaking: m.Speaking}, nil
	case message.Surface:
		return Surface{Type: SURFACE, ConnectionID: m.ConnectionID, Shrunk: m.Shrunk}, nil
	default:
		return nil, fmt.Errorf("unknown message type %T", msg)
	}
}
