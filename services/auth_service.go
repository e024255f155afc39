//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"chatterbox/auth"
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/repositories"
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
)

type IAuthService interface {
	Login(ctx context.Context, username, password string) (Session, error)
	Register(ctx context.Context, username, password string) (Session, error)
	Authenticate(token string) (domain.Identity, error)
}

// Session is what a client receives after register or login.
type Session struct {
	User  domain.Participant
	Token string
}

type AuthService struct {
	userRepository repositories.IUserRepository
	issuer         *auth.TokenIssuer
}

func NewAuthService(repo repositories.IUserRepository, issuer *auth.TokenIssuer) IAuthService {
	return &AuthService{userRepository: repo, issuer: issuer}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	// 1. Validate business rules (username format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.ValidateRegister(auth.RegisterRequest{Username: username, Password: password}); err != nil {
		return Session{}, err
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user with the generated hash
	user, err := s.userRepository.CreateUser(ctx, username, hashedPassword)
	if err != nil {
		return Session{}, err // Will propagate ErrUserAlreadyExists if username is taken
	}

	// 4. Generate the initial session token
	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{User: user.Participant(), Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	// 1. Retrieve user by username from storage
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if stdErrors.Is(err, errors.ErrUserNotFound) {
			// Generic error to prevent user enumeration attacks
			return Session{}, errors.ErrInvalidCredentials
		}
		return Session{}, err
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{User: user.Participant(), Token: token}, nil
}

// Authenticate resolves a bearer token into the identity it was issued for.
func (s *AuthService) Authenticate(token string) (domain.Identity, error) {
	claims, err := s.issuer.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrUnauthorized, err)
	}
	return domain.Identity(claims.UserID), nil
}
