package signaling_test

import (
	"avatar/client"
	"avatar/media"
	"avatar/signaling"
	"avatar/types/avatar"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type connectorFunc func(ctx context.Context, sel avatar.Selection, offer string) (string, error)

func (f connectorFunc) ConnectAvatar(ctx context.Context, sel avatar.Selection, offer string) (string, error) {
	return f(ctx, sel, offer)
}

func TestCodec(t *testing.T) {
	t.Run("given a description when encoded and decoded then it is unchanged", func(t *testing.T) {
		desc := webrtc.SessionDescription{Type: webrtc.SDPTypeOffer, SDP: "v=0\r\no=- 1 1 IN IP4 0.0.0.0\r\n"}

		encoded, err := signaling.Encode(desc)
		require.NoError(t, err)
		decoded, err := signaling.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, desc.Type, decoded.Type)
		assert.Equal(t, desc.SDP, decoded.SDP)
	})

	t.Run("given invalid input when decoding then ErrDecode is returned", func(t *testing.T) {
		for _, text := range []string{
			"%%%not-base64",
			base64.StdEncoding.EncodeToString([]byte("not json")),
		} {
			_, err := signaling.Decode(text)
			assert.ErrorIs(t, err, signaling.ErrDecode, text)
		}
	})
}

func answer(t *testing.T) string {
	t.Helper()
	encoded, err := signaling.Encode(webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer, SDP: "answer-sdp"})
	require.NoError(t, err)
	return encoded
}

func TestSignaler_Negotiate(t *testing.T) {
	offer := &webrtc.SessionDescription{Type: webrtc.SDPTypeOffer, SDP: "offer-sdp"}

	t.Run("given a valid answer when negotiating then it is applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		conn := media.NewMockConnection(ctrl)
		conn.EXPECT().ID().Return("c1").AnyTimes()
		conn.EXPECT().LocalDescription().Return(offer)
		conn.EXPECT().SetRemoteDescription(gomock.Any()).DoAndReturn(func(desc webrtc.SessionDescription) error {
			assert.Equal(t, webrtc.SDPTypeAnswer, desc.Type)
			assert.Equal(t, "answer-sdp", desc.SDP)
			return nil
		})

		sel := avatar.Default()
		sel.Reconnect = true
		s := signaling.New(connectorFunc(func(_ context.Context, got avatar.Selection, encoded string) (string, error) {
			assert.True(t, got.Reconnect)
			desc, err := signaling.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, "offer-sdp", desc.SDP)
			return answer(t), nil
		}))

		assert.NoError(t, s.Negotiate(context.Background(), conn, sel))
	})

	t.Run("given a 500 from the backend when negotiating then ErrNegotiation wraps the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		conn := media.NewMockConnection(ctrl)
		conn.EXPECT().ID().Return("c1").AnyTimes()
		conn.EXPECT().LocalDescription().Return(offer)

		s := signaling.New(connectorFunc(func(context.Context, avatar.Selection, string) (string, error) {
			return "", &client.StatusError{Path: client.PathConnectAvatar, StatusCode: http.StatusInternalServerError}
		}))

		err := s.Negotiate(context.Background(), conn, avatar.Default())
		assert.ErrorIs(t, err, signaling.ErrNegotiation)
		var statusErr *client.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	})

	t.Run("given a garbled answer when negotiating then ErrDecode is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		conn := media.NewMockConnection(ctrl)
		conn.EXPECT().ID().Return("c1").AnyTimes()
		conn.EXPECT().LocalDescription().Return(offer)

		s := signaling.New(connectorFunc(func(context.Context, avatar.Selection, string) (string, error) {
			return "garbage!", nil
		}))

		assert.ErrorIs(t, s.Negotiate(context.Background(), conn, avatar.Default()), signaling.ErrDecode)
	})

	t.Run("given an offer echoed back when negotiating then ErrDecode is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		conn := media.NewMockConnection(ctrl)
		conn.EXPECT().ID().Return("c1").AnyTimes()
		conn.EXPECT().LocalDescription().Return(offer)

		s := signaling.New(connectorFunc(func(_ context.Context, _ avatar.Selection, encoded string) (string, error) {
			return encoded, nil
		}))

		assert.ErrorIs(t, s.Negotiate(context.Background(), conn, avatar.Default()), signaling.ErrDecode)
	})

	t.Run("given a rejected answer when applying then ErrNegotiation is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		conn := media.NewMockConnection(ctrl)
		conn.EXPECT().ID().Return("c1").AnyTimes()
		conn.EXPECT().LocalDescription().Return(offer)
		conn.EXPECT().SetRemoteDescription(gomock.Any()).Return(errors.New("bad sdp"))

		s := signaling.New(connectorFunc(func(context.Context, avatar.Selection, string) (string, error) {
			return answer(t), nil
		}))

		assert.ErrorIs(t, s.Negotiate(context.Background(), conn, avatar.Default()), signaling.ErrNegotiation)
	})

	t.Run("given no local description when negotiating then no request is sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		conn := media.NewMockConnection(ctrl)
		conn.EXPECT().ID().Return("c1").AnyTimes()
		conn.EXPECT().LocalDescription().Return(nil)

		s := signaling.New(connectorFunc(func(context.Context, avatar.Selection, string) (string, error) {
			t.Fatal("unexpected request")
			return "", nil
		}))

		assert.ErrorIs(t, s.Negotiate(context.Background(), conn, avatar.Default()), signaling.ErrNegotiation)
	})
}
