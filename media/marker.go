package media

import "strings"

// Data channel markers sent by the avatar service.
const (
	MarkerSpeaking = "EVENT_TYPE_SWITCH_TO_SPEAKING"
	MarkerIdle     = "EVENT_TYPE_SWITCH_TO_IDLE"
)

// EventChannelLabel is the label of the data channel created by the client.
const EventChannelLabel = "eventChannel"

// ParseSpeaking reports whether text carries a speaking marker and which one.
// Markers are matched anywhere in the message.
func ParseSpeaking(text string) (speaking bool, ok bool) {
	switch {
	case strings.Contains(text, MarkerSpeaking):
		return true, true
	case strings.Contains(text, MarkerIdle):
		return false, true
	default:
		return false, false
	}
}
