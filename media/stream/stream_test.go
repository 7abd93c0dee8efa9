package stream_test

import (
	"avatar/media/stream"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pion/interceptor"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrack struct {
	kind    webrtc.RTPCodecType
	packets chan *rtp.Packet
}

func newFakeTrack(kind webrtc.RTPCodecType) *fakeTrack {
	return &fakeTrack{kind: kind, packets: make(chan *rtp.Packet, 16)}
}

func (f *fakeTrack) ID() string                { return f.kind.String() }
func (f *fakeTrack) Kind() webrtc.RTPCodecType { return f.kind }

func (f *fakeTrack) Codec() webrtc.RTPCodecParameters {
	if f.kind == webrtc.RTPCodecTypeAudio {
		return webrtc.RTPCodecParameters{RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeOpus, ClockRate: 48000, Channels: 2}}
	}
	return webrtc.RTPCodecParameters{RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8, ClockRate: 90000}}
}

func (f *fakeTrack) ReadRTP() (*rtp.Packet, interceptor.Attributes, error) {
	pkt, ok := <-f.packets
	if !ok {
		return nil, nil, io.EOF
	}
	return pkt, nil, nil
}

type recordingWriter struct {
	mu      sync.Mutex
	packets int
	closed  bool
}

func (w *recordingWriter) WriteRTP(*rtp.Packet) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.packets++
	return nil
}

func (w *recordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *recordingWriter) state() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.packets, w.closed
}

type writers struct {
	mu  sync.Mutex
	all []*recordingWriter
}

func (ws *writers) factory(string, webrtc.RTPCodecType, webrtc.RTPCodecParameters) (stream.Writer, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	w := &recordingWriter{}
	ws.all = append(ws.all, w)
	return w, nil
}

func (ws *writers) get(i int) *recordingWriter {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.all[i]
}

type byteCounter struct {
	mu    sync.Mutex
	bytes map[string]int
}

func (b *byteCounter) AddInboundBytes(kind string, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bytes[kind] += n
}

func (b *byteCounter) get(kind string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bytes[kind]
}

func TestSinks(t *testing.T) {
	t.Run("given video packets when the first marker arrives then first frame fires once", func(t *testing.T) {
		var frames atomic.Int32
		ws := &writers{}
		counter := &byteCounter{bytes: map[string]int{}}
		sinks := stream.New("c1", ws.factory, counter, func() { frames.Add(1) })

		track := newFakeTrack(webrtc.RTPCodecTypeVideo)
		sinks.Attach(track)
		track.packets <- &rtp.Packet{Payload: []byte{1, 2}}
		track.packets <- &rtp.Packet{Header: rtp.Header{Marker: true}, Payload: []byte{3}}
		track.packets <- &rtp.Packet{Header: rtp.Header{Marker: true}, Payload: []byte{4}}

		assert.Eventually(t, func() bool {
			n, _ := ws.get(0).state()
			return n == 3
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, int32(1), frames.Load())
		assert.Equal(t, 4, counter.get("video"))
	})

	t.Run("given audio packets with marker then first frame does not fire", func(t *testing.T) {
		var frames atomic.Int32
		ws := &writers{}
		sinks := stream.New("c1", ws.factory, nil, func() { frames.Add(1) })

		track := newFakeTrack(webrtc.RTPCodecTypeAudio)
		sinks.Attach(track)
		track.packets <- &rtp.Packet{Header: rtp.Header{Marker: true}}

		assert.Eventually(t, func() bool {
			n, _ := ws.get(0).state()
			return n == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, int32(0), frames.Load())
	})

	t.Run("given a second track of the same kind when attached then the old sink is closed", func(t *testing.T) {
		ws := &writers{}
		sinks := stream.New("c1", ws.factory, nil, nil)

		first := newFakeTrack(webrtc.RTPCodecTypeVideo)
		sinks.Attach(first)
		sinks.Attach(newFakeTrack(webrtc.RTPCodecTypeAudio))
		second := newFakeTrack(webrtc.RTPCodecTypeVideo)
		sinks.Attach(second)

		_, closed := ws.get(0).state()
		assert.True(t, closed)
		assert.Equal(t, 2, sinks.Len())

		first.packets <- &rtp.Packet{}
		second.packets <- &rtp.Packet{}
		assert.Eventually(t, func() bool {
			n, _ := ws.get(2).state()
			return n == 1
		}, time.Second, 5*time.Millisecond)
		n, _ := ws.get(0).state()
		assert.Equal(t, 0, n)
	})

	t.Run("given closed sinks then writers are closed and new tracks are dropped", func(t *testing.T) {
		ws := &writers{}
		sinks := stream.New("c1", ws.factory, nil, nil)
		sinks.Attach(newFakeTrack(webrtc.RTPCodecTypeVideo))

		sinks.Close()
		sinks.Close()
		_, closed := ws.get(0).state()
		assert.True(t, closed)

		sinks.Attach(newFakeTrack(webrtc.RTPCodecTypeAudio))
		assert.Equal(t, 0, sinks.Len())
		_, closed = ws.get(1).state()
		assert.True(t, closed)
	})

	t.Run("given an ended track then its writer is closed", func(t *testing.T) {
		ws := &writers{}
		sinks := stream.New("c1", ws.factory, nil, nil)
		track := newFakeTrack(webrtc.RTPCodecTypeVideo)
		sinks.Attach(track)

		close(track.packets)
		assert.Eventually(t, func() bool {
			_, closed := ws.get(0).state()
			return closed
		}, time.Second, 5*time.Millisecond)
	})
}

func TestRecorder(t *testing.T) {
	dir := t.TempDir()
	factory := stream.Recorder(dir)

	t.Run("given a vp8 track then an ivf writer is created", func(t *testing.T) {
		w, err := factory("c1", webrtc.RTPCodecTypeVideo, newFakeTrack(webrtc.RTPCodecTypeVideo).Codec())
		require.NoError(t, err)
		assert.FileExists(t, dir+"/c1-video.ivf")
		assert.NoError(t, w.Close())
	})

	t.Run("given an opus track then an ogg writer is created", func(t *testing.T) {
		w, err := factory("c1", webrtc.RTPCodecTypeAudio, newFakeTrack(webrtc.RTPCodecTypeAudio).Codec())
		require.NoError(t, err)
		assert.FileExists(t, dir+"/c1-audio.ogg")
		assert.NoError(t, w.Close())
	})

	t.Run("given an unknown codec then an error is returned", func(t *testing.T) {
		_, err := factory("c1", webrtc.RTPCodecTypeVideo, webrtc.RTPCodecParameters{
			RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: "video/unknown"},
		})
		assert.Error(t, err)
	})
}
