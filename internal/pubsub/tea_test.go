package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(ChangedEvent, "catalog.db")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "catalog.db", event.Payload)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	ch := make(chan Event[string])
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Nil(t, ListenCmd(ctx, ch)())
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	require.Nil(t, ListenCmd(context.Background(), ch)())
}

func TestContinuousListener_Listen(t *testing.T) {
	broker := NewBroker[int](WithReplayLast())
	defer broker.Close()

	broker.Publish(SnapshotEvent, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener[int](ctx, broker)
	broker.Publish(SnapshotEvent, 2)

	for _, want := range []int{1, 2} {
		msg := listener.Listen()()
		event, ok := msg.(Event[int])
		require.True(t, ok)
		require.Equal(t, want, event.Payload)
	}
}

func TestContinuousListener_NilIsSafe(t *testing.T) {
	var listener *ContinuousListener[int]
	require.Nil(t, listener.Listen())
}
