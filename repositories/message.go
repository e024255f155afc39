//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chatterbox/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IMessageRepository interface {
	StoreMessage(ctx context.Context, message domain.Message) error
	GetConversation(ctx context.Context, a, b domain.Identity) ([]domain.Message, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

// NewMessageRepository builds the badger message store.
// A nil limitMessages returns whole conversations, otherwise only the most recent ones.
func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{pair}:{timestamp_padded}:{id}" to:
//  1. Group both directions of a conversation under the same symmetrical pair prefix.
//  2. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  3. Break ties between messages stored at the same nanosecond with the id.
//
// Only participant ids are stored: usernames are resolved on read.
func (m MessageRepository) StoreMessage(_ context.Context, message domain.Message) error {
	key := messageKey(message)
	data, err := encodeRecord(map[string]any{
		"id":        message.ID,
		"sender":    string(message.Sender.ID),
		"receiver":  string(message.Receiver.ID),
		"content":   message.Content,
		"createdAt": formatTime(message.CreatedAt),
	})
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// GetConversation retrieves the messages exchanged by a and b, oldest first.
// Thanks to the padded timestamp in the key, a forward prefix scan is already sorted.
// With a limit, the scan runs backwards from the newest and the page is flipped.
func (m MessageRepository) GetConversation(_ context.Context, a, b domain.Identity) ([]domain.Message, error) {
	prefix := []byte(fmt.Sprintf("msg:%s:", domain.PairKey(a, b)))
	var messages []domain.Message

	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = m.limitMessages != nil
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := prefix
		if options.Reverse {
			seekKey = append(append([]byte{}, prefix...), 0xFF)
		}

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			err := it.Item().Value(func(val []byte) error {
				message, err := toMessage(val)
				if err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if m.limitMessages != nil {
		messages = lo.Reverse(messages)
	}
	return messages, nil
}

func messageKey(message domain.Message) string {
	return fmt.Sprintf("msg:%s:%019d:%s",
		domain.PairKey(message.Sender.ID, message.Receiver.ID),
		message.CreatedAt.UnixNano(),
		message.ID,
	)
}

func toMessage(data []byte) (domain.Message, error) {
	r, err := decodeRecord(data)
	if err != nil {
		return domain.Message{}, err
	}
	createdAt, err := r.Time("createdAt")
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        r.String("id"),
		Sender:    domain.Participant{ID: domain.Identity(r.String("sender"))},
		Receiver:  domain.Participant{ID: domain.Identity(r.String("receiver"))},
		Content:   r.String("content"),
		CreatedAt: createdAt,
	}, nil
}
