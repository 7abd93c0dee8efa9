// Package client talks to the avatar backend over HTTP.
package client

import (
	"avatar/types/api/response"
	"avatar/types/avatar"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// backend paths
const (
	PathIceToken         = "/api/getIceToken"
	PathConnectAvatar    = "/api/connectAvatar"
	PathDisconnectAvatar = "/api/disconnectAvatar"
	PathContinueSpeaking = "/api/chat/continueSpeaking"
	PathSpeak            = "/api/speak"
	PathStopSpeaking     = "/api/stopSpeaking"
)

// DefaultTimeout bounds every backend request.
const DefaultTimeout = 30 * time.Second

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.StatusCode, e.Body)
}

// Client is the backend of one widget session. Every request carries the same ClientId.
type Client struct {
	baseURL  string
	clientID string
	http     *http.Client
}

// New creates a client for baseURL. A fresh ClientId is generated when clientID is empty.
func New(baseURL, clientID string, httpClient *http.Client) *Client {
	if clientID == "" {
		clientID = uuid.NewString()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		http:     httpClient,
	}
}

// ClientID returns the identifier sent in the ClientId header.
func (c *Client) ClientID() string {
	return c.clientID
}

// GetIceToken fetches the relay credential.
func (c *Client) GetIceToken(ctx context.Context) (response.IceToken, error) {
	var token response.IceToken
	body, err := c.do(ctx, http.MethodGet, PathIceToken, nil, nil)
	if err != nil {
		return token, err
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return token, fmt.Errorf("failed to decode ice token: %w", err)
	}
	return token, nil
}

// ConnectAvatar posts the encoded local description and returns the encoded answer.
func (c *Client) ConnectAvatar(ctx context.Context, sel avatar.Selection, offer string) (string, error) {
	header := http.Header{}
	sel.SetHeaders(header)
	body, err := c.do(ctx, http.MethodPost, PathConnectAvatar, header, strings.NewReader(offer))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// DisconnectAvatar tells the backend the session is over.
func (c *Client) DisconnectAvatar(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, PathDisconnectAvatar, nil, nil)
	return err
}

// ContinueSpeaking asks the backend to resume speech cut off by a reconnect.
func (c *Client) ContinueSpeaking(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, PathContinueSpeaking, nil, nil)
	return err
}

// Speak sends SSML for the avatar to speak and returns the backend's result id.
func (c *Client) Speak(ctx context.Context, ssml string) (string, error) {
	header := http.Header{}
	header.Set("Content-Type", "application/ssml+xml")
	body, err := c.do(ctx, http.MethodPost, PathSpeak, header, strings.NewReader(ssml))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// StopSpeaking interrupts the current utterance.
func (c *Client) StopSpeaking(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, PathStopSpeaking, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request %s: %w", path, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set(avatar.HeaderClientID, c.clientID)

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", path, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response of %s: %w", path, err)
	}
	log.Debug().Str("module", "client").
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Path: path, StatusCode: res.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}
