// Package ice keeps the relay credential used to build peer connections fresh.
package ice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// DefaultRefreshInterval is how often the credential is refetched.
const DefaultRefreshInterval = 60 * time.Second

// ErrInvalidCredential is returned when a fetched token cannot be used.
var ErrInvalidCredential = errors.New("invalid ice credential")

// Credential is a relay credential. A newer credential supersedes an older one.
type Credential struct {
	URLs      []string
	Username  string
	Password  string
	FetchedAt time.Time
}

// Validate checks the URL schemes and that TURN URLs come with a username and password.
func (c Credential) Validate() error {
	if len(c.URLs) == 0 {
		return fmt.Errorf("%w: no urls", ErrInvalidCredential)
	}
	for _, u := range c.URLs {
		scheme, _, ok := strings.Cut(u, ":")
		if !ok {
			return fmt.Errorf("%w: malformed url %q", ErrInvalidCredential, u)
		}
		switch strings.ToLower(scheme) {
		case "stun", "stuns":
		case "turn", "turns":
			if c.Username == "" || c.Password == "" {
				return fmt.Errorf("%w: %q requires username and password", ErrInvalidCredential, u)
			}
		default:
			return fmt.Errorf("%w: unsupported scheme in %q", ErrInvalidCredential, u)
		}
	}
	return nil
}

// ICEServers converts the credential into a single pion ICE server entry.
func (c Credential) ICEServers() []webrtc.ICEServer {
	return []webrtc.ICEServer{{
		URLs:           append([]string(nil), c.URLs...),
		Username:       c.Username,
		Credential:     c.Password,
		CredentialType: webrtc.ICECredentialTypePassword,
	}}
}

// Source fetches credentials and hands each new one to OnCredential.
type Source struct {
	fetcher      Fetcher
	interval     time.Duration
	onCredential func(Credential)
	metrics      Metrics
	now          func() time.Time

	mu      sync.RWMutex
	current *Credential
}

// Option configures a Source.
type Option func(*Source)

// WithInterval overrides DefaultRefreshInterval.
func WithInterval(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithMetrics records refresh failures on m.
func WithMetrics(m Metrics) Option {
	return func(s *Source) {
		s.metrics = m
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		s.now = now
	}
}

// New creates a Source. onCredential may be nil.
func New(fetcher Fetcher, onCredential func(Credential), opts ...Option) *Source {
	s := &Source{
		fetcher:      fetcher,
		interval:     DefaultRefreshInterval,
		onCredential: onCredential,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves, validates and stores a new credential. On failure the current
// credential is kept.
func (s *Source) Fetch(ctx context.Context) (Credential, error) {
	token, err := s.fetcher.GetIceToken(ctx)
	if err != nil {
		return Credential{}, fmt.Errorf("failed to fetch ice token: %w", err)
	}
	cred := Credential{
		URLs:      token.Urls,
		Username:  token.Username,
		Password:  token.Password,
		FetchedAt: s.now(),
	}
	if err := cred.Validate(); err != nil {
		return Credential{}, err
	}

	s.mu.Lock()
	s.current = &cred
	s.mu.Unlock()
	return cred, nil
}

// Current returns the latest credential, if any.
func (s *Source) Current() (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Credential{}, false
	}
	return *s.current, true
}

// Run fetches immediately and then on every tick until ctx is done. Failures are
// retried on the next tick.
func (s *Source) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.refresh(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Source) refresh(ctx context.Context) {
	cred, err := s.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if s.metrics != nil {
			s.metrics.IncrementCredentialFailures()
		}
		log.Warn().Str("module", "ice").Err(err).Msg("credential refresh failed")
		return
	}
	log.Debug().Str("module", "ice").Strs("urls", cred.URLs).Msg("credential refreshed")
	if s.onCredential != nil {
		s.onCredential(cred)
	}
}
