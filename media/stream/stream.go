// Package stream drains inbound tracks of a peer connection into per-kind sinks.
package stream

import (
	"errors"
	"io"
	"sync"

	"github.com/pion/interceptor"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// Track is the read side of a remote track. *webrtc.TrackRemote implements it.
type Track interface {
	ID() string
	Kind() webrtc.RTPCodecType
	Codec() webrtc.RTPCodecParameters
	ReadRTP() (*rtp.Packet, interceptor.Attributes, error)
}

// Metrics records received bytes.
type Metrics interface {
	AddInboundBytes(kind string, n int)
}

// Sinks holds at most one audio and one video sink for a connection.
type Sinks struct {
	connID       string
	newWriter    WriterFactory
	metrics      Metrics
	onFirstFrame func()

	mu     sync.Mutex
	closed bool
	sinks  map[webrtc.RTPCodecType]*sink
}

// New creates the sinks of connection connID. onFirstFrame runs once per video sink,
// on the first packet that completes a frame.
func New(connID string, newWriter WriterFactory, metrics Metrics, onFirstFrame func()) *Sinks {
	if newWriter == nil {
		newWriter = DiscardFactory
	}
	return &Sinks{
		connID:       connID,
		newWriter:    newWriter,
		metrics:      metrics,
		onFirstFrame: onFirstFrame,
		sinks:        make(map[webrtc.RTPCodecType]*sink),
	}
}

// Attach starts draining track. A previous sink of the same kind is closed first.
func (s *Sinks) Attach(track Track) {
	kind := track.Kind()
	w, err := s.newWriter(s.connID, kind, track.Codec())
	if err != nil {
		log.Warn().Str("module", "stream").Str("conn", s.connID).Err(err).Msg("falling back to discard writer")
		w = Discard()
	}

	next := &sink{kind: kind, writer: w, done: make(chan struct{})}
	if kind == webrtc.RTPCodecTypeVideo {
		next.onFrame = s.onFirstFrame
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = w.Close()
		return
	}
	prev := s.sinks[kind]
	s.sinks[kind] = next
	s.mu.Unlock()

	if prev != nil {
		prev.close()
	}
	log.Debug().Str("module", "stream").Str("conn", s.connID).Str("kind", kind.String()).Str("codec", track.Codec().MimeType).Msg("track attached")
	go next.run(track, s.metrics)
}

// Len returns the number of live sinks.
func (s *Sinks) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sinks)
}

// Close stops every sink. Attach after Close discards the track.
func (s *Sinks) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	sinks := s.sinks
	s.sinks = make(map[webrtc.RTPCodecType]*sink)
	s.mu.Unlock()

	for _, sk := range sinks {
		sk.close()
	}
}

type sink struct {
	kind    webrtc.RTPCodecType
	writer  Writer
	onFrame func()
	done    chan struct{}

	mu     sync.Mutex
	closed bool
	framed bool
}

func (s *sink) run(track Track, metrics Metrics) {
	defer close(s.done)
	kind := s.kind.String()
	for {
		pkt, _, err := track.ReadRTP()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Str("module", "stream").Str("kind", kind).Err(err).Msg("track read ended")
			}
			s.close()
			return
		}
		if metrics != nil {
			metrics.AddInboundBytes(kind, len(pkt.Payload))
		}
		if !s.write(pkt) {
			return
		}
	}
}

// write hands pkt to the writer and reports false once the sink is closed.
func (s *sink) write(pkt *rtp.Packet) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	if err := s.writer.WriteRTP(pkt); err != nil {
		log.Debug().Str("module", "stream").Str("kind", s.kind.String()).Err(err).Msg("write failed")
	}
	first := !s.framed && pkt.Marker && s.onFrame != nil
	if first {
		s.framed = true
	}
	s.mu.Unlock()

	if first {
		s.onFrame()
	}
	return true
}

func (s *sink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if err := s.writer.Close(); err != nil {
		log.Debug().Str("module", "stream").Str("kind", s.kind.String()).Err(err).Msg("close writer")
	}
}
