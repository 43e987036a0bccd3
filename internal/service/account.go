package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/PradeepKumarReddy-098/pioneer/internal/auth"
	"github.com/PradeepKumarReddy-098/pioneer/internal/metrics"
	"github.com/PradeepKumarReddy-098/pioneer/internal/model"
	"github.com/PradeepKumarReddy-098/pioneer/internal/repository"
)

// Account service errors.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrUnknownUser    = errors.New("unknown user")
	ErrBadPassword    = errors.New("password mismatch")
)

// UserStore is the persistence surface the account service needs.
// *repository.Repository satisfies it; implementations return the
// repository sentinel errors.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
}

// AccountService handles registration and login.
type AccountService struct {
	store   UserStore
	tokens  *auth.TokenService
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(store UserStore, tokens *auth.TokenService, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:   store,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Register creates a new account with a hashed password.
// Username and email collisions are distinguished so callers can report
// which field is taken.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	email = model.NormalizeEmail(email)

	existing, err := s.store.GetUserByUsernameOrEmail(ctx, username, email)
	if err == nil {
		if existing.Username == username {
			return nil, ErrUsernameExists
		}
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		// Backstop for the race where another request registered the
		// same username or email between the pre-check and the insert.
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return nil, ErrUsernameExists
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUserRegistered()
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return "", ErrUnknownUser
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !match {
		s.metrics.IncLoginFailure()
		return "", ErrBadPassword
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()
	return token, nil
}
