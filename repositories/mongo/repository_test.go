package mongo

import (
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/repositories"
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type testRepositories struct {
	users    repositories.IUserRepository
	messages repositories.IMessageRepository
}

// These tests need a running MongoDB, e.g. MONGO_TEST_URI=mongodb://localhost:27017.
func testDB(t *testing.T, limitMessages *int) *testRepositories {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	db, err := NewDB(ctx, uri, "chatterbox_test_"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = db.Client().Disconnect(ctx)
	})
	return &testRepositories{users: NewUserRepository(db), messages: NewMessageRepository(db, limitMessages)}
}

func TestMongo_Users(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := testDB(t, nil)

	alice, err := db.users.CreateUser(ctx, "alice", "hash")
	req.NoError(err)

	_, err = db.users.CreateUser(ctx, "alice", "hash")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	found, err := db.users.GetUserByID(ctx, alice.ID)
	req.NoError(err)
	req.Equal("alice", found.Username)

	_, err = db.users.GetUserByUsername(ctx, "ghost")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestMongo_Conversation_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := testDB(t, nil)
	at := time.Now().UTC().Truncate(time.Millisecond)

	for i, content := range []string{"second", "first"} {
		req.NoError(db.messages.StoreMessage(ctx, domain.Message{
			ID:        uuid.NewString(),
			Sender:    domain.Participant{ID: "alice"},
			Receiver:  domain.Participant{ID: "bob"},
			Content:   content,
			CreatedAt: at.Add(time.Duration(1-i) * time.Second),
		}))
	}

	messages, err := db.messages.GetConversation(ctx, "bob", "alice")
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("first", messages[0].Content)
	req.Equal("second", messages[1].Content)
}

func TestConversationOptions(t *testing.T) {
	req := require.New(t)

	// Without a limit the whole conversation is read oldest first
	whole := conversationOptions(nil)
	req.Nil(whole.Limit)
	req.Equal(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}, whole.Sort)

	// With a limit only the newest page is read
	limit := 2
	tail := conversationOptions(&limit)
	req.NotNil(tail.Limit)
	req.Equal(int64(2), *tail.Limit)
	req.Equal(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, tail.Sort)
}

func TestMongo_Conversation_Limit_Keeps_Most_Recent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	limit := 2
	db := testDB(t, &limit)
	at := time.Now().UTC().Truncate(time.Millisecond)

	for i, content := range []string{"one", "two", "three"} {
		req.NoError(db.messages.StoreMessage(ctx, domain.Message{
			ID:        uuid.NewString(),
			Sender:    domain.Participant{ID: "alice"},
			Receiver:  domain.Participant{ID: "bob"},
			Content:   content,
			CreatedAt: at.Add(time.Duration(i) * time.Second),
		}))
	}

	messages, err := db.messages.GetConversation(ctx, "alice", "bob")
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("two", messages[0].Content)
	req.Equal("three", messages[1].Content)
}
