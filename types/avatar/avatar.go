// Package avatar describes the avatar persona and voice the remote service renders.
package avatar

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// Header names understood by the avatar backend.
const (
	HeaderClientID              = "ClientId"
	HeaderCharacter             = "AvatarCharacter"
	HeaderStyle                 = "AvatarStyle"
	HeaderIsCustom              = "IsCustomAvatar"
	HeaderVoice                 = "TtsVoice"
	HeaderReconnect             = "Reconnect"
	HeaderCustomVoiceEndpointID = "CustomVoiceEndpointId"
	HeaderSpeakerProfileID      = "PersonalVoiceSpeakerProfileId"
)

// Defaults used when no selection is configured. They match the backend's own fallbacks.
const (
	DefaultCharacter = "lisa"
	DefaultStyle     = "casual-sitting"
	DefaultVoice     = "en-US-JennyNeural"
)

// Below is the error for selection validation.
var (
	ErrEmptyCharacter = errors.New("avatar character is empty")
	ErrEmptyStyle     = errors.New("avatar style is empty")
	ErrUnknownStyle   = errors.New("style is not available for character")
	ErrUnknownAvatar  = errors.New("unknown avatar character")
	ErrEmptyVoice     = errors.New("voice name is empty")
)

// Styles lists the built-in characters and the styles each one supports.
var Styles = map[string][]string{
	"Harry": {"business", "casual", "youthful"},
	"Jeff":  {"business", "formal"},
	"Lisa":  {"casual-sitting"},
	"Lori":  {"casual", "formal", "graceful"},
	"Max":   {"business", "casual", "formal"},
	"Meg":   {"business", "casual", "formal"},
}

// Selection is the character, style and voice requested for a session.
type Selection struct {
	Character             string `json:"character" mapstructure:"character"`
	Style                 string `json:"style" mapstructure:"style"`
	IsCustom              bool   `json:"isCustom" mapstructure:"custom"`
	Voice                 string `json:"voice,omitempty" mapstructure:"voice"`
	CustomVoiceEndpointID string `json:"customVoiceEndpointId,omitempty" mapstructure:"custom_voice_endpoint_id"`
	SpeakerProfileID      string `json:"speakerProfileId,omitempty" mapstructure:"speaker_profile_id"`

	// Reconnect is set by the session controller, never by callers.
	Reconnect bool `json:"-" mapstructure:"-"`
}

// Default returns the selection the backend would pick on its own.
func Default() Selection {
	return Selection{
		Character: DefaultCharacter,
		Style:     DefaultStyle,
		Voice:     DefaultVoice,
	}
}

// Validate checks the selection against the built-in catalog. Custom avatars only
// need a non-empty character and style.
func (s Selection) Validate() error {
	if s.Character == "" {
		return ErrEmptyCharacter
	}
	if s.Style == "" {
		return ErrEmptyStyle
	}
	if s.IsCustom {
		return nil
	}
	styles, ok := lookup(s.Character)
	if !ok {
		return fmt.Errorf("%s: %w", s.Character, ErrUnknownAvatar)
	}
	if !slices.Contains(styles, s.Style) {
		return fmt.Errorf("%s/%s: %w", s.Character, s.Style, ErrUnknownStyle)
	}
	return nil
}

// SetHeaders writes the selection onto an outgoing request.
func (s Selection) SetHeaders(h http.Header) {
	h.Set(HeaderCharacter, s.Character)
	h.Set(HeaderStyle, s.Style)
	h.Set(HeaderIsCustom, strconv.FormatBool(s.IsCustom))
	if s.Voice != "" {
		h.Set(HeaderVoice, s.Voice)
	}
	if s.CustomVoiceEndpointID != "" {
		h.Set(HeaderCustomVoiceEndpointID, s.CustomVoiceEndpointID)
	}
	if s.SpeakerProfileID != "" {
		h.Set(HeaderSpeakerProfileID, s.SpeakerProfileID)
	}
	if s.Reconnect {
		h.Set(HeaderReconnect, "true")
	}
}

// lookup matches character names case-insensitively; the backend default is lower
// case while the catalog is capitalised.
func lookup(character string) ([]string, bool) {
	if styles, ok := Styles[character]; ok {
		return styles, true
	}
	for name, styles := range Styles {
		if strings.EqualFold(name, character) {
			return styles, true
		}
	}
	return nil, false
}
