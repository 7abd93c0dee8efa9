package broker_test

import (
	"avatar/broker"
	"avatar/broker/subscription"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker(t *testing.T) {
	t.Run("given two subscribers when publishing then both receive messages in order", func(t *testing.T) {
		b := broker.New()
		first, err := b.Subscribe(broker.HOOK)
		require.NoError(t, err)
		second, err := b.Subscribe(broker.HOOK)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			require.NoError(t, b.Publish(broker.HOOK, i))
		}

		for i := 0; i < 3; i++ {
			assert.Equal(t, i, first.Receive())
			assert.Equal(t, i, second.Receive())
		}
	})

	t.Run("given an unknown topic then subscribe and publish fail", func(t *testing.T) {
		b := broker.New()
		_, err := b.Subscribe(broker.TOPIC(42))
		assert.ErrorIs(t, err, broker.ErrUnknownTopic)
		assert.ErrorIs(t, b.Publish(broker.TOPIC(42), "x"), broker.ErrUnknownTopic)
	})

	t.Run("given an unsubscribed subscription then receive returns nil", func(t *testing.T) {
		b := broker.New()
		sub, err := b.Subscribe(broker.HOOK)
		require.NoError(t, err)

		require.NoError(t, b.Unsubscribe(broker.HOOK, sub))
		assert.Nil(t, sub.Receive())
		assert.NoError(t, b.Publish(broker.HOOK, "after"))
	})

	t.Run("given a full subscriber when publishing then the message is dropped for it only", func(t *testing.T) {
		b := broker.New()
		slow, err := b.Subscribe(broker.HOOK)
		require.NoError(t, err)

		for i := 0; i < subscription.QueueSize; i++ {
			require.NoError(t, b.Publish(broker.HOOK, i))
		}
		fast, err := b.Subscribe(broker.HOOK)
		require.NoError(t, err)

		require.NoError(t, b.Publish(broker.HOOK, "overflow"))
		assert.Len(t, slow.C(), subscription.QueueSize)
		assert.Equal(t, "overflow", fast.Receive())
	})

	t.Run("given a closed broker then operations fail", func(t *testing.T) {
		b := broker.New()
		sub, err := b.Subscribe(broker.HOOK)
		require.NoError(t, err)

		b.Close()
		assert.Nil(t, sub.Receive())
		assert.ErrorIs(t, b.Publish(broker.HOOK, "x"), broker.ErrClosed)
	})
}
