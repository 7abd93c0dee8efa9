package media

import (
	"avatar/ice"
	"avatar/media/stream"
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// Factory builds relay-only peer connections with their offer already set.
type Factory struct {
	api           *webrtc.API
	events        Events
	metrics       Metrics
	newWriter     stream.WriterFactory
	gatherTimeout time.Duration
}

// NewFactory creates a factory. events receives every connection event and may not be nil.
func NewFactory(api *webrtc.API, events Events, metrics Metrics, cfg Config) *Factory {
	f := &Factory{
		api:           api,
		events:        events,
		metrics:       metrics,
		newWriter:     stream.DiscardFactory,
		gatherTimeout: cfg.GatherTimeout,
	}
	if cfg.RecordDir != "" {
		f.newWriter = stream.Recorder(cfg.RecordDir)
	}
	if f.gatherTimeout <= 0 {
		f.gatherTimeout = DefaultGatherTimeout
	}
	return f
}

// Build creates a connection for cred and starts ICE gathering. onReady runs once,
// when gathering completes or times out, unless the connection was closed first.
func (f *Factory) Build(cred ice.Credential, onReady func(Connection)) (*PendingConnection, error) {
	pc, err := f.api.NewPeerConnection(webrtc.Configuration{
		ICEServers:         cred.ICEServers(),
		ICETransportPolicy: webrtc.ICETransportPolicyRelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create peer connection: %w", err)
	}

	id := shortuuid.New()
	conn := &PendingConnection{
		id:      id,
		pc:      pc,
		metrics: f.metrics,
		sinks: stream.New(id, f.newWriter, f.metrics, func() {
			f.events.OnFirstFrame(id)
		}),
	}
	conn.gatherer = newGatherer(f.gatherTimeout, func(timedOut bool) {
		conn.gathered.Store(true)
		if timedOut {
			log.Warn().Str("module", "media").Str("conn", id).Dur("timeout", f.gatherTimeout).Msg("ice gathering timed out")
		}
		if conn.closed.Load() {
			return
		}
		if onReady != nil {
			onReady(conn)
		}
	})
	if f.metrics != nil {
		f.metrics.IncrementWebRTCConnections()
	}

	if err := f.setup(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("module", "media").Str("conn", id).Msg("connection created, gathering candidates")
	return conn, nil
}

func (f *Factory) setup(conn *PendingConnection) error {
	pc := conn.pc
	id := conn.id

	pc.OnTrack(func(track *webrtc.TrackRemote, _ *webrtc.RTPReceiver) {
		conn.sinks.Attach(track)
	})
	pc.OnICEConnectionStateChange(func(state webrtc.ICEConnectionState) {
		log.Info().Str("module", "media").Str("conn", id).Str("state", state.String()).Msg("ice connection state changed")
		f.events.OnICEStateChange(id, state)
	})
	pc.OnICECandidate(conn.gatherer.candidate)
	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		dc.OnMessage(func(msg webrtc.DataChannelMessage) {
			if !msg.IsString {
				return
			}
			f.events.OnDataMessage(id, string(msg.Data))
		})
	})

	for _, kind := range []webrtc.RTPCodecType{webrtc.RTPCodecTypeVideo, webrtc.RTPCodecTypeAudio} {
		if _, err := pc.AddTransceiverFromKind(kind, webrtc.RTPTransceiverInit{
			Direction: webrtc.RTPTransceiverDirectionSendrecv,
		}); err != nil {
			return fmt.Errorf("failed to add %s transceiver: %w", kind, err)
		}
	}

	// The avatar service opens its own channel; creating one makes sure the
	// offer negotiates SCTP so that channel can arrive.
	if _, err := pc.CreateDataChannel(EventChannelLabel, nil); err != nil {
		return fmt.Errorf("failed to create data channel: %w", err)
	}

	offer, err := pc.CreateOffer(nil)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	if err := pc.SetLocalDescription(offer); err != nil {
		return fmt.Errorf("failed to set local description: %w", err)
	}
	return nil
}
