package runtime

import (
	"chatterbox/contract"
	"chatterbox/domain"
	"chatterbox/domain/event"
	"chatterbox/errors"
	"chatterbox/mocks"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPresenceBroadcaster_Sends_To_Every_Channel(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	broadcaster := NewPresenceBroadcaster(slog.Default(), registry)
	alice := NewRecordingChannel("alice-ch")
	bob := NewRecordingChannel("bob-ch")
	registry.Register(ctx, "alice", alice)
	registry.Register(ctx, "bob", bob)

	// When carol goes online
	broadcaster.OnPresence(ctx, event.Presence{Identity: "carol", Status: domain.StatusOnline})

	// Then every connected channel is told, carol is unrelated to both
	for _, ch := range []*RecordingChannel{alice, bob} {
		events := ch.Named(event.UserStatus)
		req.Len(events, 1)
		var payload event.StatusPayload
		req.NoError(events[0].Decode(&payload))
		req.EqualValues("carol", payload.UserID)
		req.Equal(domain.StatusOnline, payload.Status)
	}
}

func TestPresenceBroadcaster_Failing_Channel_Does_Not_Stop_FanOut(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	broken := mocks.NewMockChannel(ctrl)
	healthy := NewRecordingChannel("healthy")

	registry.EXPECT().Channels().Return([]contract.Channel{broken, healthy})
	broken.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.ErrChannelFull)
	broken.EXPECT().ID().Return("broken").AnyTimes()

	broadcaster := NewPresenceBroadcaster(slog.Default(), registry)
	broadcaster.OnPresence(ctx, event.Presence{Identity: "carol", Status: domain.StatusOffline})

	req.Len(healthy.Named(event.UserStatus), 1)
}

func TestPresenceBroadcaster_Observers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockPresenceListener(ctrl)
	broadcaster := NewPresenceBroadcaster(slog.Default(), NewRegistry())

	// Given an observer
	cancel := broadcaster.Observe(observer)

	// Then it receives presence while subscribed
	observer.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOnline)).Times(1)
	broadcaster.OnPresence(ctx, event.Presence{Identity: "alice", Status: domain.StatusOnline})

	// And nothing after cancel
	cancel()
	broadcaster.OnPresence(ctx, event.Presence{Identity: "alice", Status: domain.StatusOffline})
	req.Empty(broadcaster.observers)
}
