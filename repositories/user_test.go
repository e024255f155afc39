package repositories

import (
	"chatterbox/errors"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openBadger(t))

	created, err := repository.CreateUser(ctx, "alice", "hash")
	req.NoError(err)
	req.NotEmpty(created.ID)

	byName, err := repository.GetUserByUsername(ctx, "alice")
	req.NoError(err)
	req.Equal(created.ID, byName.ID)
	req.Equal("hash", byName.PasswordHash)
	req.True(created.CreatedAt.Equal(byName.CreatedAt))

	byID, err := repository.GetUserByID(ctx, created.ID)
	req.NoError(err)
	req.Equal("alice", byID.Username)
	req.Equal("alice", byID.Participant().Username)
}

func TestUserRepository_Duplicate_Username(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openBadger(t))

	_, err := repository.CreateUser(ctx, "alice", "hash")
	req.NoError(err)

	_, err = repository.CreateUser(ctx, "alice", "other")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_Not_Found(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openBadger(t))

	_, err := repository.GetUserByUsername(ctx, "ghost")
	req.ErrorIs(err, errors.ErrUserNotFound)

	_, err = repository.GetUserByID(ctx, "ghost-id")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_List_Is_Sorted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openBadger(t))

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := repository.CreateUser(ctx, name, "hash")
		req.NoError(err)
	}

	users, err := repository.ListUsers(ctx)
	req.NoError(err)
	req.Len(users, 3)
	req.Equal("alice", users[0].Username)
	req.Equal("carol", users[2].Username)
}
