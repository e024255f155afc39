//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"chatterbox/domain"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
)

const (
	fieldPair      = "pair"
	fieldContent   = "content"
	fieldSender    = "sender"
	fieldReceiver  = "receiver"
	fieldCreatedAt = "createdAt"
)

type IMessageIndex interface {
	Index(ctx context.Context, message domain.Message) error
	Search(ctx context.Context, a, b domain.Identity, query string) ([]domain.Message, error)
}

// MessageIndex is the full-text index of persisted messages.
// Documents are scoped by conversation pair so a search never leaks another conversation.
type MessageIndex struct {
	writer     *bluge.Writer
	log        *slog.Logger
	maxResults int
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger, maxResults int) *MessageIndex {
	return &MessageIndex{writer: writer, log: log, maxResults: maxResults}
}

func (i *MessageIndex) Index(_ context.Context, message domain.Message) error {
	doc := bluge.NewDocument(message.ID).
		AddField(bluge.NewKeywordField(fieldPair, domain.PairKey(message.Sender.ID, message.Receiver.ID))).
		AddField(bluge.NewTextField(fieldContent, message.Content).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSender, string(message.Sender.ID)).StoreValue()).
		AddField(bluge.NewKeywordField(fieldReceiver, string(message.Receiver.ID)).StoreValue()).
		AddField(bluge.NewKeywordField(fieldCreatedAt, formatTime(message.CreatedAt)).StoreValue())
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index message %s: %w", message.ID, err)
	}
	return nil
}

// Search matches query against the content of the a/b conversation.
// Results are ordered like the conversation itself, oldest first.
func (i *MessageIndex) Search(ctx context.Context, a, b domain.Identity, query string) ([]domain.Message, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(domain.PairKey(a, b)).SetField(fieldPair)).
		AddMust(bluge.NewMatchQuery(query).SetField(fieldContent))

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(i.maxResults, q))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var messages []domain.Message
	match, err := matches.Next()
	for err == nil && match != nil {
		message, visitErr := toIndexedMessage(match)
		if visitErr != nil {
			i.log.Debug("Skipping unreadable document", "error", visitErr)
		} else {
			messages = append(messages, message)
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	sort.Slice(messages, func(x, y int) bool { return domain.Less(messages[x], messages[y]) })
	return messages, nil
}

func toIndexedMessage(match *search.DocumentMatch) (domain.Message, error) {
	var message domain.Message
	var createdAt string
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "_id":
			message.ID = string(value)
		case fieldContent:
			message.Content = string(value)
		case fieldSender:
			message.Sender.ID = domain.Identity(value)
		case fieldReceiver:
			message.Receiver.ID = domain.Identity(value)
		case fieldCreatedAt:
			createdAt = string(value)
		}
		return true
	})
	if err != nil {
		return domain.Message{}, err
	}
	at, err := parseTime(createdAt)
	if err != nil {
		return domain.Message{}, err
	}
	message.CreatedAt = at
	return message, nil
}
