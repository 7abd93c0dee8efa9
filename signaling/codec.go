package signaling

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pion/webrtc/v4"
)

// ErrDecode is returned when an encoded session description cannot be read.
var ErrDecode = errors.New("failed to decode session description")

// Encode renders desc as base64 of its JSON form.
func Encode(desc webrtc.SessionDescription) (string, error) {
	data, err := json.Marshal(desc)
	if err != nil {
		return "", fmt.Errorf("failed to encode session description: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode is the inverse of Encode.
func Decode(text string) (webrtc.SessionDescription, error) {
	var desc webrtc.SessionDescription
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return desc, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := json.Unmarshal(data, &desc); err != nil {
		return desc, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return desc, nil
}
