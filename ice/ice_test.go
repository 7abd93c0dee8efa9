package ice_test

import (
	"avatar/ice"
	"avatar/types/api/response"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cred    ice.Credential
		wantErr bool
	}{
		{
			name: "given a turn url with credentials then valid",
			cred: ice.Credential{URLs: []string{"turn:relay.example.com:3478"}, Username: "u", Password: "p"},
		},
		{
			name: "given a stun url without credentials then valid",
			cred: ice.Credential{URLs: []string{"stun:stun.example.com:3478"}},
		},
		{
			name: "given a turns url with credentials then valid",
			cred: ice.Credential{URLs: []string{"turns:relay.example.com:443?transport=tcp"}, Username: "u", Password: "p"},
		},
		{
			name:    "given no urls then invalid",
			cred:    ice.Credential{Username: "u", Password: "p"},
			wantErr: true,
		},
		{
			name:    "given a turn url without password then invalid",
			cred:    ice.Credential{URLs: []string{"turn:relay.example.com:3478"}, Username: "u"},
			wantErr: true,
		},
		{
			name:    "given an http url then invalid",
			cred:    ice.Credential{URLs: []string{"http://relay.example.com"}, Username: "u", Password: "p"},
			wantErr: true,
		},
		{
			name:    "given a url without scheme then invalid",
			cred:    ice.Credential{URLs: []string{"relay.example.com"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cred.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ice.ErrInvalidCredential)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredential_ICEServers(t *testing.T) {
	cred := ice.Credential{URLs: []string{"turn:a:3478", "turn:b:3478"}, Username: "u", Password: "p"}

	servers := cred.ICEServers()
	require.Len(t, servers, 1)
	assert.Equal(t, []string{"turn:a:3478", "turn:b:3478"}, servers[0].URLs)
	assert.Equal(t, "u", servers[0].Username)
	assert.Equal(t, "p", servers[0].Credential)
	assert.Equal(t, webrtc.ICECredentialTypePassword, servers[0].CredentialType)
}

func TestSource_Fetch(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("given a valid token when fetching then it becomes current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := ice.NewMockFetcher(ctrl)
		fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{
			Urls: []string{"turn:relay:3478"}, Username: "u", Password: "p",
		}, nil)

		source := ice.New(fetcher, nil, ice.WithClock(func() time.Time { return now }))
		_, ok := source.Current()
		assert.False(t, ok)

		cred, err := source.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, now, cred.FetchedAt)

		current, ok := source.Current()
		require.True(t, ok)
		assert.Equal(t, cred, current)
	})

	t.Run("given a newer token when fetching then the old one is replaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := ice.NewMockFetcher(ctrl)
		gomock.InOrder(
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{
				Urls: []string{"turn:old:3478"}, Username: "u1", Password: "p1",
			}, nil),
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{
				Urls: []string{"turn:new:3478"}, Username: "u2", Password: "p2",
			}, nil),
		)

		source := ice.New(fetcher, nil)
		_, err := source.Fetch(context.Background())
		require.NoError(t, err)
		_, err = source.Fetch(context.Background())
		require.NoError(t, err)

		current, _ := source.Current()
		assert.Equal(t, []string{"turn:new:3478"}, current.URLs)
		assert.Equal(t, "u2", current.Username)
	})

	t.Run("given a failing backend when fetching then the current credential is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := ice.NewMockFetcher(ctrl)
		gomock.InOrder(
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{
				Urls: []string{"turn:relay:3478"}, Username: "u", Password: "p",
			}, nil),
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{}, errors.New("down")),
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{Urls: []string{"turn:bad"}}, nil),
		)

		source := ice.New(fetcher, nil)
		_, err := source.Fetch(context.Background())
		require.NoError(t, err)
		_, err = source.Fetch(context.Background())
		assert.Error(t, err)
		_, err = source.Fetch(context.Background())
		assert.ErrorIs(t, err, ice.ErrInvalidCredential)

		current, ok := source.Current()
		require.True(t, ok)
		assert.Equal(t, []string{"turn:relay:3478"}, current.URLs)
	})
}

type failureCounter struct {
	n atomic.Int32
}

func (f *failureCounter) IncrementCredentialFailures() {
	f.n.Add(1)
}

func TestSource_Run(t *testing.T) {
	t.Run("given a running source then every success reaches the callback and failures are counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := ice.NewMockFetcher(ctrl)
		token := response.IceToken{Urls: []string{"turn:relay:3478"}, Username: "u", Password: "p"}
		gomock.InOrder(
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(token, nil),
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(response.IceToken{}, errors.New("down")),
			fetcher.EXPECT().GetIceToken(gomock.Any()).Return(token, nil).MinTimes(1),
		)

		delivered := make(chan ice.Credential, 16)
		failures := &failureCounter{}
		source := ice.New(fetcher, func(c ice.Credential) { delivered <- c },
			ice.WithInterval(10*time.Millisecond), ice.WithMetrics(failures))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			source.Run(ctx)
			close(done)
		}()

		for i := 0; i < 2; i++ {
			select {
			case c := <-delivered:
				assert.Equal(t, token.Urls, c.URLs)
			case <-time.After(time.Second):
				t.Fatal("credential not delivered")
			}
		}
		cancel()
		<-done
		assert.Equal(t, int32(1), failures.n.Load())
	})
}
