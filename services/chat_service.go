//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chatterbox/contract"
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/repositories"
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type IChatService interface {
	GetConversation(ctx context.Context, self, peer domain.Identity) ([]domain.Message, error)
	SendMessage(ctx context.Context, self, peer domain.Identity, content string) (domain.Message, error)
	Search(ctx context.Context, self, peer domain.Identity, query string) ([]domain.Message, error)
}

// ChatService owns the durable side of a conversation.
// Notifying the peer is not its job: the sender does it over the push channel.
type ChatService struct {
	log               *slog.Logger
	messageRepository repositories.IMessageRepository
	userRepository    repositories.IUserRepository
	index             repositories.IMessageIndex
	indexQueue        chan<- domain.Message
	maxContentLength  int
	filter            contract.ContentFilter
	now               func() time.Time
}

func NewChatService(
	log *slog.Logger,
	messageRepository repositories.IMessageRepository,
	userRepository repositories.IUserRepository,
	index repositories.IMessageIndex,
	indexQueue chan<- domain.Message,
	maxContentLength int,
	filter contract.ContentFilter,
) *ChatService {
	return &ChatService{
		log:               log,
		messageRepository: messageRepository,
		userRepository:    userRepository,
		index:             index,
		indexQueue:        indexQueue,
		maxContentLength:  maxContentLength,
		filter:            filter,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// GetConversation returns the self/peer history, oldest first, with usernames resolved.
func (s *ChatService) GetConversation(ctx context.Context, self, peer domain.Identity) ([]domain.Message, error) {
	messages, err := s.messageRepository.GetConversation(ctx, self, peer)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, messages)
}

// SendMessage persists a message from self to peer and returns its canonical form.
// The stored content is the filtered one when a content filter is set.
func (s *ChatService) SendMessage(ctx context.Context, self, peer domain.Identity, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	if s.maxContentLength > 0 && utf8.RuneCountInString(content) > s.maxContentLength {
		return domain.Message{}, errors.ErrContentTooLong
	}
	if self == peer {
		return domain.Message{}, errors.ErrSelfConversation
	}

	sender, err := s.userRepository.GetUserByID(ctx, self)
	if err != nil {
		return domain.Message{}, err
	}
	receiver, err := s.userRepository.GetUserByID(ctx, peer)
	if err != nil {
		return domain.Message{}, err
	}

	if s.filter != nil {
		content = s.filter.Censor(content)
	}
	message := domain.Message{
		ID:        uuid.NewString(),
		Sender:    sender.Participant(),
		Receiver:  receiver.Participant(),
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.messageRepository.StoreMessage(ctx, message); err != nil {
		return domain.Message{}, err
	}

	select {
	case s.indexQueue <- message:
	default:
		s.log.Warn("Index queue full, message will not be searchable", "id", message.ID)
	}
	return message, nil
}

// Search looks for query in the self/peer conversation only.
func (s *ChatService) Search(ctx context.Context, self, peer domain.Identity, query string) ([]domain.Message, error) {
	if s.index == nil {
		return nil, errors.ErrIndexUnavailable
	}
	messages, err := s.index.Search(ctx, self, peer, query)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, messages)
}

// resolve fills the usernames of the two participants, looked up once each.
func (s *ChatService) resolve(ctx context.Context, messages []domain.Message) ([]domain.Message, error) {
	names := make(map[domain.Identity]string)
	lookup := func(p domain.Participant) (domain.Participant, error) {
		if name, ok := names[p.ID]; ok {
			return domain.Participant{ID: p.ID, Username: name}, nil
		}
		user, err := s.userRepository.GetUserByID(ctx, p.ID)
		if err != nil {
			return domain.Participant{}, err
		}
		names[p.ID] = user.Username
		return user.Participant(), nil
	}

	resolved := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		sender, err := lookup(m.Sender)
		if err != nil {
			return nil, err
		}
		receiver, err := lookup(m.Receiver)
		if err != nil {
			return nil, err
		}
		m.Sender, m.Receiver = sender, receiver
		resolved = append(resolved, m)
	}
	return resolved, nil
}
