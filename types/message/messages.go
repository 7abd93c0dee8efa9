// Package message provides data types for broker message.
package message

// State is published whenever the session state changes.
type State struct {
	State  string
	Reason string
}

// Controls tells the UI which affordances are enabled.
type Controls struct {
	StartEnabled        bool
	StopEnabled         bool
	MicEnabled          bool
	StopSpeakingEnabled bool
}

// Status is a line of status text for the UI. IsError marks failures.
type Status struct {
	Text    string
	IsError bool
}

// Speaking is published when the avatar starts or stops speaking.
type Speaking struct {
	Speaking bool
}

// Surface asks the UI to shrink or restore the avatar video surface.
type Surface struct {
	ConnectionID string
	Shrunk       bool
}
