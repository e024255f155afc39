//go:generate go run go.uber.org/mock/mockgen -source=user_service.go -destination=../mocks/mock_user_service.go -package=mocks
package services

import (
	"chatterbox/domain"
	"chatterbox/repositories"
	"context"

	"github.com/samber/lo"
)

type IUserService interface {
	GetUser(ctx context.Context, id domain.Identity) (domain.Participant, error)
	ListContacts(ctx context.Context, self domain.Identity) ([]domain.Participant, error)
}

type UserService struct {
	userRepository repositories.IUserRepository
}

func NewUserService(repo repositories.IUserRepository) IUserService {
	return &UserService{userRepository: repo}
}

func (s *UserService) GetUser(ctx context.Context, id domain.Identity) (domain.Participant, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return domain.Participant{}, err
	}
	return user.Participant(), nil
}

// ListContacts returns every user except the caller.
func (s *UserService) ListContacts(ctx context.Context, self domain.Identity) ([]domain.Participant, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	contacts := lo.Filter(users, func(u repositories.User, _ int) bool { return u.ID != self })
	return lo.Map(contacts, func(u repositories.User, _ int) domain.Participant { return u.Participant() }), nil
}
