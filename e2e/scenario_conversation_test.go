package e2e

import (
	"chatterbox/client"
	"chatterbox/domain"
	"chatterbox/domain/event"
	presenceclient "chatterbox/infrastructure/grpc/client"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type conversationSuite struct {
	BaseSuite
}

func TestConversationSuite(t *testing.T) {
	suite.Run(t, &conversationSuite{})
}

// inbox records what a push client received.
type inbox struct {
	mu     sync.Mutex
	events []event.Envelope
}

func (i *inbox) handle(env event.Envelope) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.events = append(i.events, env)
}

func (i *inbox) has(name event.Name, match func(env event.Envelope) bool) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, env := range i.events {
		if env.Event == name && (match == nil || match(env)) {
			return true
		}
	}
	return false
}

func statusOf(identity domain.Identity, status domain.Status) func(event.Envelope) bool {
	return func(env event.Envelope) bool {
		var p event.StatusPayload
		return env.Decode(&p) == nil && p.UserID == identity && p.Status == status
	}
}

func (s *conversationSuite) connect(ctx context.Context, identity domain.Identity) (*client.PushClient, *inbox, context.CancelFunc) {
	box := &inbox{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := client.NewPushClient(log, s.PushURL(), identity, box.handle)
	ctx, cancel := context.WithCancel(ctx)
	go func() { _ = push.Run(ctx) }()
	return push, box, cancel
}

func (s *conversationSuite) TestTwoParty_Conversation() {
	ctx := context.Background()
	aliceAPI, alice := s.Register(ctx, "alice")
	bobAPI, bob := s.Register(ctx, "bob")

	alicePush, aliceBox, stopAlice := s.connect(ctx, alice.User.ID)
	defer stopAlice()
	_, bobBox, stopBob := s.connect(ctx, bob.User.ID)
	defer stopBob()

	s.Run("Step 1: both participants are announced online", func() {
		s.Step(s.T(), "Waiting for presence")
		s.Eventually(func() bool {
			return aliceBox.has(event.UserStatus, statusOf(bob.User.ID, domain.StatusOnline))
		}, 5*time.Second, 50*time.Millisecond)

		online, err := aliceAPI.Presence(ctx)
		s.Require().NoError(err)
		s.Contains(online, bob.User.ID)
	})

	s.Run("Step 2: the presence API agrees", func() {
		s.WithPresence("ListOnline as alice", alice.Token, func(ctx context.Context, presence *presenceclient.PresenceClient) {
			online, err := presence.ListOnline(ctx)
			s.Require().NoError(err)
			s.Contains(online, alice.User.ID)
			s.Contains(online, bob.User.ID)
		})
	})

	s.Run("Step 3: typing then a message reach bob only", func() {
		s.Require().NoError(alicePush.Emit(event.Typing, event.TypingPayload{SenderID: alice.User.ID, ReceiverID: bob.User.ID}))
		stored, err := aliceAPI.SendMessage(ctx, bob.User.ID, "hello bob")
		s.Require().NoError(err)
		s.NotEmpty(stored.ID)
		s.Require().NoError(alicePush.Emit(event.SendMessage, event.SendMessagePayload{
			SenderID: alice.User.ID, ReceiverID: bob.User.ID, Content: stored.Content,
		}))

		s.Eventually(func() bool {
			return bobBox.has(event.Typing, nil) && bobBox.has(event.NewMessage, func(env event.Envelope) bool {
				var p event.NewMessagePayload
				return env.Decode(&p) == nil && p.SenderID == alice.User.ID && p.Content == "hello bob"
			})
		}, 5*time.Second, 50*time.Millisecond)
		s.False(aliceBox.has(event.NewMessage, nil))

		history, err := bobAPI.FetchConversation(ctx, alice.User.ID)
		s.Require().NoError(err)
		s.Require().NotEmpty(history)
		s.Equal(stored.ID, history[len(history)-1].ID)
	})

	s.Run("Step 4: bob leaving is broadcast", func() {
		s.WithPresence("Watch as alice", alice.Token, func(ctx context.Context, presence *presenceclient.PresenceClient) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			offline := make(chan struct{})
			var once sync.Once
			go func() {
				_ = presence.Watch(ctx, func(p event.Presence) {
					if p.Identity == bob.User.ID && p.Status == domain.StatusOffline {
						once.Do(func() { close(offline) })
					}
				})
			}()
			// Give the stream time to subscribe before the transition happens
			time.Sleep(200 * time.Millisecond)
			stopBob()

			select {
			case <-offline:
			case <-time.After(5 * time.Second):
				s.Fail("bob offline transition not watched")
			}
		})
		s.Eventually(func() bool {
			return aliceBox.has(event.UserStatus, statusOf(bob.User.ID, domain.StatusOffline))
		}, 5*time.Second, 50*time.Millisecond)
	})
}
