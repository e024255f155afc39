package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func openIndex(t *testing.T) *MessageIndex {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewMessageIndex(writer, slog.Default(), 50)
}

func TestMessageIndex_Search_Is_Scoped_To_Conversation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openIndex(t)
	at := time.Now().UTC()

	// Given messages in two conversations
	later := newMessage("bob", "alice", "Badger is fast", at.Add(time.Minute))
	earlier := newMessage("alice", "bob", "Do you like badger storage?", at)
	req.NoError(index.Index(ctx, later))
	req.NoError(index.Index(ctx, earlier))
	req.NoError(index.Index(ctx, newMessage("alice", "carol", "badger secrets", at)))

	// When alice searches her conversation with bob, case-insensitively
	results, err := index.Search(ctx, "alice", "bob", "BADGER")
	req.NoError(err)

	// Then only that conversation matches, oldest first
	req.Len(results, 2)
	req.Equal(earlier.ID, results[0].ID)
	req.Equal(later.ID, results[1].ID)
	req.Equal("Do you like badger storage?", results[0].Content)
	req.EqualValues("alice", results[0].Sender.ID)
	req.True(earlier.CreatedAt.Equal(results[0].CreatedAt))
}

func TestMessageIndex_Empty_Query(t *testing.T) {
	req := require.New(t)
	index := openIndex(t)

	results, err := index.Search(context.Background(), "alice", "bob", "   ")
	req.NoError(err)
	req.Empty(results)
}
