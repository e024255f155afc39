package mongo

import (
	"chatterbox/domain"
	"chatterbox/repositories"
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageDocument struct {
	ID        string    `bson:"_id"`
	Pair      string    `bson:"pair"`
	Sender    string    `bson:"sender"`
	Receiver  string    `bson:"receiver"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MessageRepository handles database operations for chat messages.
type MessageRepository struct {
	DB            *mongo.Database
	limitMessages *int
}

// NewMessageRepository builds the MongoDB message store.
// A nil limitMessages returns whole conversations, otherwise only the most recent ones.
func NewMessageRepository(db *mongo.Database, limitMessages *int) repositories.IMessageRepository {
	return &MessageRepository{DB: db, limitMessages: limitMessages}
}

func (r *MessageRepository) StoreMessage(ctx context.Context, message domain.Message) error {
	_, err := r.DB.Collection(messageCollection).InsertOne(ctx, messageDocument{
		ID:        message.ID,
		Pair:      domain.PairKey(message.Sender.ID, message.Receiver.ID),
		Sender:    string(message.Sender.ID),
		Receiver:  string(message.Receiver.ID),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	})
	return err
}

// conversationOptions sorts oldest first, or newest first when a limit keeps only the tail.
func conversationOptions(limitMessages *int) *options.FindOptions {
	if limitMessages == nil {
		return options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	}
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(*limitMessages))
}

// GetConversation returns the a/b history sorted by creation time, ties broken by id.
// With a limit, the newest page is fetched then flipped back to conversation order.
func (r *MessageRepository) GetConversation(ctx context.Context, a, b domain.Identity) ([]domain.Message, error) {
	cursor, err := r.DB.Collection(messageCollection).Find(ctx, bson.M{"pair": domain.PairKey(a, b)},
		conversationOptions(r.limitMessages))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []messageDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if r.limitMessages != nil {
		docs = lo.Reverse(docs)
	}
	return lo.Map(docs, func(doc messageDocument, _ int) domain.Message {
		return domain.Message{
			ID:        doc.ID,
			Sender:    domain.Participant{ID: domain.Identity(doc.Sender)},
			Receiver:  domain.Participant{ID: domain.Identity(doc.Receiver)},
			Content:   doc.Content,
			CreatedAt: doc.CreatedAt.UTC(),
		}
	}), nil
}
