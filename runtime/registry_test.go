package runtime

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	"chatterbox/mocks"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func presenceOf(identity domain.Identity, status domain.Status) gomock.Matcher {
	return gomock.Cond(func(p event.Presence) bool {
		return p.Identity == identity && p.Status == status
	})
}

func TestRegistry_Register_Emits_Online(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockPresenceListener(ctrl)
	registry := NewRegistry()
	registry.SetListener(listener)
	ctx := context.Background()
	ch := NewRecordingChannel(uuid.NewString())

	// Given no user is connected
	req.Zero(registry.Len())

	// Then an online presence is emitted
	listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOnline)).Times(1)

	// When alice registers
	registry.Register(ctx, "alice", ch)

	got, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(ch, got)
	req.Equal([]domain.Identity{"alice"}, registry.Online())
}

func TestRegistry_Register_Twice_Replaces_Channel_And_Emits_Online_Again(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockPresenceListener(ctrl)
	registry := NewRegistry()
	registry.SetListener(listener)
	ctx := context.Background()
	first := NewRecordingChannel("c1")
	second := NewRecordingChannel("c2")

	// Then online is emitted for each registration, no offline for the replaced channel
	listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOnline)).Times(2)

	// When alice registers from two channels
	registry.Register(ctx, "alice", first)
	registry.Register(ctx, "alice", second)

	// Then only the last channel is active
	got, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(second, got)
	req.Equal(1, registry.Len())
}

func TestRegistry_Unregister_Superseded_Channel_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockPresenceListener(ctrl)
	registry := NewRegistry()
	registry.SetListener(listener)
	ctx := context.Background()
	c1 := NewRecordingChannel("c1")
	c2 := NewRecordingChannel("c2")

	listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOnline)).Times(2)
	// Given alice registered with c1 then c2
	registry.Register(ctx, "alice", c1)
	registry.Register(ctx, "alice", c2)

	// When c1 is lost
	left := registry.Unregister(ctx, c1)

	// Then nothing fires and alice stays online on c2
	req.False(left)
	got, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(c2, got)
}

func TestRegistry_Unregister_Active_Channel_Emits_Offline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockPresenceListener(ctrl)
	registry := NewRegistry()
	registry.SetListener(listener)
	ctx := context.Background()
	ch := NewRecordingChannel("c1")

	gomock.InOrder(
		listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOnline)),
		listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOffline)),
	)

	registry.Register(ctx, "alice", ch)
	req.True(registry.Unregister(ctx, ch))

	// Then no entry left
	_, ok := registry.Lookup("alice")
	req.False(ok)
	req.Empty(registry.Online())
	req.Empty(registry.Channels())
}

func TestRegistry_Unregister_Unknown_Channel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockPresenceListener(ctrl)
	registry := NewRegistry()
	registry.SetListener(listener)

	// Then the listener is never called
	listener.EXPECT().OnPresence(gomock.Any(), gomock.Any()).Times(0)

	req.False(registry.Unregister(context.Background(), NewRecordingChannel("never-joined")))
}

func TestRegistry_Channel_Rebound_To_Another_Identity(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockPresenceListener(ctrl)
	registry := NewRegistry()
	registry.SetListener(listener)
	ctx := context.Background()
	ch := NewRecordingChannel("c1")

	gomock.InOrder(
		listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOnline)),
		listener.EXPECT().OnPresence(gomock.Any(), presenceOf("alice", domain.StatusOffline)),
		listener.EXPECT().OnPresence(gomock.Any(), presenceOf("bob", domain.StatusOnline)),
	)

	// When the same channel joins as alice then as bob
	registry.Register(ctx, "alice", ch)
	registry.Register(ctx, "bob", ch)

	// Then only bob remains
	req.Equal([]domain.Identity{"bob"}, registry.Online())
}

func TestRegistry_Concurrent_Access(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			identity := domain.Identity(uuid.NewString())
			ch := NewRecordingChannel(uuid.NewString())
			registry.Register(ctx, identity, ch)
			registry.Lookup(identity)
			registry.Channels()
			registry.Unregister(ctx, ch)
		}()
	}
	wg.Wait()

	req.Zero(registry.Len())
}
