package controller_test

import (
	"avatar/broker"
	"avatar/pkg/socket"
	"avatar/session"
	"avatar/signal/controller"
	"avatar/types/avatar"
	clientrequest "avatar/types/client/request"
	"avatar/types/client/response"
	"avatar/types/message"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frames struct {
	mu  sync.Mutex
	all []any
}

func (f *frames) add(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all = append(f.all, v)
	return nil
}

func (f *frames) list() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.all...)
}

func (f *frames) has(match func(any) bool) bool {
	for _, v := range f.list() {
		if match(v) {
			return true
		}
	}
	return false
}

func readInto(req clientrequest.Common) func(any) error {
	return func(v any) error {
		*(v.(*clientrequest.Common)) = req
		return nil
	}
}

func TestController_Process(t *testing.T) {
	t.Run("given a connected client then it gets the current view, hooks and command results", func(t *testing.T) {
		mock := gomock.NewController(t)
		sess := controller.NewMockSession(mock)
		sock := socket.NewMockSocket(mock)
		brk := broker.New()
		defer brk.Close()
		con := controller.New(sess, brk, avatar.Default(), "client-1")

		written := &frames{}
		sess.EXPECT().Snapshot().Return(session.Snapshot{
			State:    session.Idle,
			Controls: message.Controls{StartEnabled: true},
		})
		sess.EXPECT().Start(gomock.Any(), avatar.Default()).Return(nil)
		sock.EXPECT().WriteJSON(gomock.Any()).DoAndReturn(written.add).AnyTimes()

		gomock.InOrder(
			sock.EXPECT().ReadJSON(gomock.Any()).DoAndReturn(readInto(clientrequest.Common{RequestID: 1, Type: clientrequest.START})),
			sock.EXPECT().ReadJSON(gomock.Any()).DoAndReturn(readInto(clientrequest.Common{RequestID: 2, Type: "DANCE"})),
			sock.EXPECT().ReadJSON(gomock.Any()).DoAndReturn(func(any) error {
				require.NoError(t, brk.Publish(broker.HOOK, message.Speaking{Speaking: true}))
				require.Eventually(t, func() bool {
					return written.has(func(v any) bool {
						s, ok := v.(response.Speaking)
						return ok && s.Speaking
					})
				}, time.Second, 5*time.Millisecond)
				return errors.New("closed")
			}),
		)

		err := con.Process(context.Background(), sock)
		assert.Error(t, err)

		all := written.list()
		require.GreaterOrEqual(t, len(all), 4)
		assert.Equal(t, response.State{Type: response.STATE, State: "idle"}, all[0])
		assert.Equal(t, response.Controls{Type: response.CONTROLS, StartEnabled: true}, all[1])
		assert.True(t, written.has(func(v any) bool {
			e, ok := v.(response.Error)
			return ok && e.RequestID == 2 && e.Type == response.ERROR
		}))
	})

	t.Run("given a speak command with a payload then ssml reaches the session", func(t *testing.T) {
		mock := gomock.NewController(t)
		sess := controller.NewMockSession(mock)
		sock := socket.NewMockSocket(mock)
		brk := broker.New()
		defer brk.Close()
		con := controller.New(sess, brk, avatar.Default(), "client-1")

		payload, err := json.Marshal(map[string]string{"text": "hi"})
		require.NoError(t, err)

		sess.EXPECT().Snapshot().Return(session.Snapshot{State: session.Active, Selection: avatar.Default()}).Times(2)
		sess.EXPECT().Speak(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ssml string) (string, error) {
			assert.Contains(t, ssml, ">hi<")
			return "r1", nil
		})
		sock.EXPECT().WriteJSON(gomock.Any()).Return(nil).AnyTimes()
		gomock.InOrder(
			sock.EXPECT().ReadJSON(gomock.Any()).DoAndReturn(readInto(clientrequest.Common{Type: clientrequest.SPEAK, Payload: payload})),
			sock.EXPECT().ReadJSON(gomock.Any()).Return(errors.New("closed")),
		)

		assert.Error(t, con.Process(context.Background(), sock))
	})

	t.Run("given a closed broker then the stream is refused", func(t *testing.T) {
		mock := gomock.NewController(t)
		brk := broker.New()
		brk.Close()
		con := controller.New(controller.NewMockSession(mock), brk, avatar.Default(), "client-1")

		err := con.Process(context.Background(), socket.NewMockSocket(mock))
		assert.ErrorIs(t, err, broker.ErrClosed)
	})
}
