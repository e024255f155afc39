package services_test

import (
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/mocks"
	"chatterbox/moderation"
	"chatterbox/repositories"
	"chatterbox/services"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	messages *mocks.MockIMessageRepository
	users    *mocks.MockIUserRepository
	index    *mocks.MockIMessageIndex
	queue    chan domain.Message
	svc      *services.ChatService
}

func newChatFixture(t *testing.T, queueSize int) chatFixture {
	ctrl := gomock.NewController(t)
	f := chatFixture{
		messages: mocks.NewMockIMessageRepository(ctrl),
		users:    mocks.NewMockIUserRepository(ctrl),
		index:    mocks.NewMockIMessageIndex(ctrl),
		queue:    make(chan domain.Message, queueSize),
	}
	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	require.NoError(t, err)
	f.svc = services.NewChatService(slog.Default(), f.messages, f.users, f.index, f.queue, 20, moderator)
	f.users.EXPECT().GetUserByID(gomock.Any(), domain.Identity("alice-id")).
		Return(repositories.User{ID: "alice-id", Username: "alice"}, nil).AnyTimes()
	f.users.EXPECT().GetUserByID(gomock.Any(), domain.Identity("bob-id")).
		Return(repositories.User{ID: "bob-id", Username: "bob"}, nil).AnyTimes()
	f.users.EXPECT().GetUserByID(gomock.Any(), domain.Identity("ghost")).
		Return(repositories.User{}, errors.ErrUserNotFound).AnyTimes()
	return f
}

func TestChatService_SendMessage_Persists_And_Queues_For_Index(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t, 1)

	var stored domain.Message
	f.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m domain.Message) error {
		stored = m
		return nil
	})

	message, err := f.svc.SendMessage(context.Background(), "alice-id", "bob-id", "hello bob")
	req.NoError(err)

	// Then the canonical message has an id and resolved participants
	req.NotEmpty(message.ID)
	req.Equal(domain.Participant{ID: "alice-id", Username: "alice"}, message.Sender)
	req.Equal(domain.Participant{ID: "bob-id", Username: "bob"}, message.Receiver)
	req.False(message.Provisional)
	req.Equal(stored, message)

	// And it is handed to the index worker
	req.Equal(message, <-f.queue)
}

func TestChatService_SendMessage_Does_Not_Block_On_Full_Index_Queue(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t, 0)
	f.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(nil)

	done := make(chan error)
	go func() {
		_, err := f.svc.SendMessage(context.Background(), "alice-id", "bob-id", "hi")
		done <- err
	}()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("SendMessage blocked on the index queue")
	}
}

func TestChatService_SendMessage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		peer    string
		content string
		want    error
	}{
		{"Blank content", "bob-id", "   ", errors.ErrEmptyContent},
		{"Content too long", "bob-id", strings.Repeat("x", 21), errors.ErrContentTooLong},
		{"Self conversation", "alice-id", "hi", errors.ErrSelfConversation},
		{"Unknown receiver", "ghost", "hi", errors.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChatFixture(t, 1)
			f.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.svc.SendMessage(context.Background(), "alice-id", domain.Identity(tt.peer), tt.content)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestChatService_SendMessage_Store_Failure(t *testing.T) {
	f := newChatFixture(t, 1)
	f.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk failure"))

	_, err := f.svc.SendMessage(context.Background(), "alice-id", "bob-id", "hi")
	require.Error(t, err)
	require.Empty(t, f.queue)
}

func TestChatService_GetConversation_Resolves_Usernames(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t, 1)
	at := time.Now().UTC()

	f.messages.EXPECT().GetConversation(gomock.Any(), domain.Identity("alice-id"), domain.Identity("bob-id")).Return([]domain.Message{
		{ID: "1", Sender: domain.Participant{ID: "alice-id"}, Receiver: domain.Participant{ID: "bob-id"}, Content: "hi", CreatedAt: at},
		{ID: "2", Sender: domain.Participant{ID: "bob-id"}, Receiver: domain.Participant{ID: "alice-id"}, Content: "yo", CreatedAt: at.Add(time.Second)},
	}, nil)

	messages, err := f.svc.GetConversation(context.Background(), "alice-id", "bob-id")
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("alice", messages[0].Sender.Username)
	req.Equal("bob", messages[0].Receiver.Username)
	req.Equal("bob", messages[1].Sender.Username)
}

func TestChatService_Search(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t, 1)

	f.index.EXPECT().Search(gomock.Any(), domain.Identity("alice-id"), domain.Identity("bob-id"), "badger").Return([]domain.Message{
		{ID: "1", Sender: domain.Participant{ID: "bob-id"}, Receiver: domain.Participant{ID: "alice-id"}, Content: "badger"},
	}, nil)

	messages, err := f.svc.Search(context.Background(), "alice-id", "bob-id", "badger")
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("bob", messages[0].Sender.Username)
}

func TestChatService_SendMessage_Stores_Censored_Content(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t, 1)
	f.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(nil)

	message, err := f.svc.SendMessage(context.Background(), "alice-id", "bob-id", "a b4dger!")

	req.NoError(err)
	req.Equal("a ******!", message.Content)
	req.Equal("a ******!", (<-f.queue).Content)
}
