//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_session.go -package=mocks
package session

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
)

// ConversationStore is the durable side of a conversation, reached over REST.
type ConversationStore interface {
	FetchConversation(ctx context.Context, peer domain.Identity) ([]domain.Message, error)
	SendMessage(ctx context.Context, peer domain.Identity, content string) (domain.Message, error)
}

// PushEmitter sends ephemeral events over the push channel. Delivery is best-effort.
type PushEmitter interface {
	Emit(name event.Name, payload any) error
}
