package mongo

import (
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/repositories"
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// UserRepository handles account documents.
type UserRepository struct {
	DB *mongo.Database
}

func NewUserRepository(db *mongo.Database) repositories.IUserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, username, hashedPassword string) (repositories.User, error) {
	doc := userDocument{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.DB.Collection(userCollection).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.User{}, errors.ErrUserAlreadyExists
		}
		return repositories.User{}, err
	}
	return toUser(doc), nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (repositories.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) GetUserByID(ctx context.Context, id domain.Identity) (repositories.User, error) {
	return r.findOne(ctx, bson.M{"_id": string(id)})
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]repositories.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.DB.Collection(userCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return lo.Map(docs, func(doc userDocument, _ int) repositories.User { return toUser(doc) }), nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (repositories.User, error) {
	var doc userDocument
	err := r.DB.Collection(userCollection).FindOne(ctx, filter).Decode(&doc)
	if stdErrors.Is(err, mongo.ErrNoDocuments) {
		return repositories.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return repositories.User{}, err
	}
	return toUser(doc), nil
}

func toUser(doc userDocument) repositories.User {
	return repositories.User{
		ID:           domain.Identity(doc.ID),
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt.UTC(),
	}
}
