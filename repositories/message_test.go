package repositories

import (
	"chatterbox/domain"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMessage(sender, receiver domain.Identity, content string, at time.Time) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Sender:    domain.Participant{ID: sender},
		Receiver:  domain.Participant{ID: receiver},
		Content:   content,
		CreatedAt: at,
	}
}

func Test_Conversation_Is_Ordered_And_Symmetrical(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openBadger(t), slog.Default(), nil)
	at := time.Now().UTC()

	// Given messages stored out of order, in both directions
	stored := []domain.Message{
		newMessage("bob", "alice", "third", at.Add(2*time.Minute)),
		newMessage("alice", "bob", "first", at),
		newMessage("alice", "bob", "second", at.Add(1*time.Minute)),
	}
	for _, m := range stored {
		req.NoError(repository.StoreMessage(ctx, m))
	}
	// And a message of another conversation
	req.NoError(repository.StoreMessage(ctx, newMessage("alice", "carol", "elsewhere", at)))

	// When each side fetches the conversation
	fromAlice, err := repository.GetConversation(ctx, "alice", "bob")
	req.NoError(err)
	fromBob, err := repository.GetConversation(ctx, "bob", "alice")
	req.NoError(err)

	// Then both get the same ascending history
	req.Equal(fromAlice, fromBob)
	req.Len(fromAlice, 3)
	req.Equal([]string{"first", "second", "third"}, []string{fromAlice[0].Content, fromAlice[1].Content, fromAlice[2].Content})
	req.Equal(stored[1].ID, fromAlice[0].ID)
	req.EqualValues("bob", fromAlice[2].Sender.ID)
	req.True(stored[0].CreatedAt.Equal(fromAlice[2].CreatedAt))
}

func Test_Conversation_Ties_Are_Broken_By_ID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openBadger(t), slog.Default(), nil)
	at := time.Now().UTC()

	b := newMessage("alice", "bob", "b", at)
	b.ID = "bbbb"
	a := newMessage("bob", "alice", "a", at)
	a.ID = "aaaa"
	req.NoError(repository.StoreMessage(ctx, b))
	req.NoError(repository.StoreMessage(ctx, a))

	messages, err := repository.GetConversation(ctx, "alice", "bob")
	req.NoError(err)
	req.Equal([]string{"aaaa", "bbbb"}, []string{messages[0].ID, messages[1].ID})
}

func Test_Conversation_Limit_Keeps_Most_Recent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	limit := 2
	repository := NewMessageRepository(openBadger(t), slog.Default(), &limit)
	at := time.Now().UTC()

	for i, content := range []string{"one", "two", "three"} {
		req.NoError(repository.StoreMessage(ctx, newMessage("alice", "bob", content, at.Add(time.Duration(i)*time.Minute))))
	}

	messages, err := repository.GetConversation(ctx, "alice", "bob")
	req.NoError(err)
	req.Len(messages, limit)
	req.Equal("two", messages[0].Content)
	req.Equal("three", messages[1].Content)
}

func Test_Empty_Conversation(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openBadger(t), slog.Default(), nil)

	messages, err := repository.GetConversation(context.Background(), "alice", "bob")
	req.NoError(err)
	req.Empty(messages)
}
