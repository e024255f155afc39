//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chatterbox/domain"
	"chatterbox/errors"
	"context"
	stdErrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	userByNamePrefix = "user:name:"
	userByIDPrefix   = "user:id:"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByID(ctx context.Context, id domain.Identity) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

// User is the repository representation of an account.
type User struct {
	ID           domain.Identity
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

func (u User) Participant() domain.Participant {
	return domain.Participant{ID: u.ID, Username: u.Username}
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a new account under two keys:
// "user:name:{username}" holds the record, "user:id:{id}" points back to the username.
func (u UserRepository) CreateUser(_ context.Context, username, hashedPassword string) (User, error) {
	user := User{
		ID:           domain.Identity(uuid.NewString()),
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}
	data, err := encodeRecord(map[string]any{
		"id":           string(user.ID),
		"username":     user.Username,
		"passwordHash": user.PasswordHash,
		"createdAt":    formatTime(user.CreatedAt),
	})
	if err != nil {
		return User{}, err
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		nameKey := []byte(userByNamePrefix + username)
		if _, err := txn.Get(nameKey); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(nameKey, data); err != nil {
			return err
		}
		return txn.Set([]byte(userByIDPrefix+string(user.ID)), []byte(username))
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUserByUsername(_ context.Context, username string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getByUsername(txn, username)
		return err
	})
	return user, err
}

func (u UserRepository) GetUserByID(_ context.Context, id domain.Identity) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userByIDPrefix + string(id)))
		if err != nil {
			return notFound(err)
		}
		username, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = getByUsername(txn, string(username))
		return err
	})
	return user, err
}

// ListUsers returns every account sorted by username.
func (u UserRepository) ListUsers(_ context.Context) ([]User, error) {
	var users []User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userByNamePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user User
			err := it.Item().Value(func(val []byte) error {
				var err error
				user, err = toUser(val)
				return err
			})
			if err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func getByUsername(txn *badger.Txn, username string) (User, error) {
	item, err := txn.Get([]byte(userByNamePrefix + username))
	if err != nil {
		return User{}, notFound(err)
	}
	var user User
	err = item.Value(func(val []byte) error {
		var decodeErr error
		user, decodeErr = toUser(val)
		return decodeErr
	})
	return user, err
}

func toUser(data []byte) (User, error) {
	r, err := decodeRecord(data)
	if err != nil {
		return User{}, err
	}
	createdAt, err := r.Time("createdAt")
	if err != nil {
		return User{}, err
	}
	return User{
		ID:           domain.Identity(r.String("id")),
		Username:     r.String("username"),
		PasswordHash: r.String("passwordHash"),
		CreatedAt:    createdAt,
	}, nil
}

func notFound(err error) error {
	if stdErrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUserNotFound
	}
	return fmt.Errorf("badger: %w", err)
}
