package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsroom/news-api/internal/core/domain"
	"github.com/newsroom/news-api/internal/core/ports"
	"github.com/newsroom/news-api/internal/core/token"
)

// AccountService implements registration and credential authentication,
// orchestrating the user directory and the token codec.
type AccountService struct {
	users ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, codec *token.Codec, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, codec: codec, log: log}
}

// Register creates a new account and returns a fresh token for it. The
// (username, email) pair must not collide with any existing account; the
// role always defaults to editor.
func (s *AccountService) Register(ctx context.Context, email, username, password string) (string, error) {
	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}
	if existing != nil {
		s.log.Info().Str("username", username).Msg("registration rejected, username or email taken")
		return "", domain.ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account := &domain.Account{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleEditor,
	}
	if _, err := s.users.Create(ctx, account); err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Msg("account registered")
	return s.codec.Issue(username, time.Now().UTC())
}

// Authenticate verifies the password against the stored hash and returns a
// fresh token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	account, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrBadCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrBadCredentials
	}

	return s.codec.Issue(account.Username, time.Now().UTC())
}
