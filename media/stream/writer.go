package stream

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"
	"github.com/pion/webrtc/v4/pkg/media/h264writer"
	"github.com/pion/webrtc/v4/pkg/media/ivfwriter"
	"github.com/pion/webrtc/v4/pkg/media/oggwriter"
)

// Writer consumes RTP packets of one track.
type Writer interface {
	WriteRTP(pkt *rtp.Packet) error
	Close() error
}

// WriterFactory creates the writer for a newly attached track.
type WriterFactory func(connID string, kind webrtc.RTPCodecType, codec webrtc.RTPCodecParameters) (Writer, error)

type discard struct{}

func (discard) WriteRTP(*rtp.Packet) error { return nil }
func (discard) Close() error               { return nil }

// Discard returns a writer that drops every packet.
func Discard() Writer {
	return discard{}
}

// DiscardFactory is the WriterFactory used when nothing is recorded.
func DiscardFactory(string, webrtc.RTPCodecType, webrtc.RTPCodecParameters) (Writer, error) {
	return Discard(), nil
}

// Recorder returns a WriterFactory that records each track under dir as
// <conn>-video.ivf, <conn>-video.h264 or <conn>-audio.ogg depending on the codec.
func Recorder(dir string) WriterFactory {
	return func(connID string, kind webrtc.RTPCodecType, codec webrtc.RTPCodecParameters) (Writer, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create record directory: %w", err)
		}
		base := filepath.Join(dir, connID+"-"+kind.String())

		switch strings.ToLower(codec.MimeType) {
		case strings.ToLower(webrtc.MimeTypeVP8):
			return ivfwriter.New(base + ".ivf")
		case strings.ToLower(webrtc.MimeTypeH264):
			return h264writer.New(base + ".h264")
		case strings.ToLower(webrtc.MimeTypeOpus):
			channels := codec.Channels
			if channels == 0 {
				channels = 2
			}
			return oggwriter.New(base+".ogg", codec.ClockRate, channels)
		default:
			return nil, fmt.Errorf("no recorder for codec %q", codec.MimeType)
		}
	}
}
