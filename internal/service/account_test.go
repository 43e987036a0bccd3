package service

import (
	"context"
	"errors"
	"testing"

	"github.com/PradeepKumarReddy-098/pioneer/internal/auth"
	"github.com/PradeepKumarReddy-098/pioneer/internal/metrics"
	"github.com/PradeepKumarReddy-098/pioneer/internal/model"
	"github.com/PradeepKumarReddy-098/pioneer/internal/repository"
)

// fakeUserStore is an in-memory UserStore for tests.
type fakeUserStore struct {
	users map[string]*model.User // keyed by username
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	clone := *user
	f.users[user.Username] = &clone
	return nil
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newTestAccountService(t *testing.T, store UserStore) *AccountService {
	t.Helper()
	tokens, err := auth.NewTokenService("account-service-test-secret")
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	return NewAccountService(store, tokens, metrics.NewInMemory())
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAccountService(t, store)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "Alice@Example.com", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email should be stored lowercased, got %q", user.Email)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}

	match, err := auth.VerifyPassword("secret123", user.PasswordHash)
	if err != nil || !match {
		t.Errorf("stored hash should verify the original password (match=%v err=%v)", match, err)
	}
}

func TestAccountService_Register_Duplicates(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAccountService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{"same username", "alice", "other@example.com", ErrUsernameExists},
		{"same email", "bob", "alice@example.com", ErrEmailExists},
		{"same email different case", "carol", "ALICE@EXAMPLE.COM", ErrEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, "secret123")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register(%s, %s) error = %v, want %v", tt.username, tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAccountService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, err := svc.Login(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token on successful login")
	}

	// The issued token carries the username claim.
	tokens, err := auth.NewTokenService("account-service-test-secret")
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("token username = %q, want alice", claims.Username)
	}
}

func TestAccountService_Login_Failures(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAccountService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"unknown user", "mallory", "secret123", ErrUnknownUser},
		{"wrong password", "alice", "wrong", ErrBadPassword},
		{"username is case sensitive", "Alice", "secret123", ErrUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login(%s) error = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}
