package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PradeepKumarReddy-098/pioneer/internal/auth"
	"github.com/PradeepKumarReddy-098/pioneer/internal/handler/dto"
	"github.com/PradeepKumarReddy-098/pioneer/internal/model"
	"github.com/PradeepKumarReddy-098/pioneer/internal/repository"
	"github.com/PradeepKumarReddy-098/pioneer/internal/service"
)

// memUserStore is an in-memory service.UserStore for handler tests.
type memUserStore struct {
	users []*model.User
}

func (m *memUserStore) CreateUser(ctx context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	clone := *user
	m.users = append(m.users, &clone)
	return nil
}

func (m *memUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	tokens, err := auth.NewTokenService("handler-test-secret")
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	accounts := service.NewAccountService(&memUserStore{}, tokens, nil)
	return NewAuthHandler(accounts, testLogger())
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not a message envelope: %v", err)
	}
	return resp.Message
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t)
	rec := postJSON(t, h.Register, "/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Registration successful!" {
		t.Errorf("message = %q", msg)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing username", `{"email":"a@b.c","password":"pw"}`},
		{"missing email", `{"username":"alice","password":"pw"}`},
		{"missing password", `{"username":"alice","email":"a@b.c"}`},
		{"malformed json", `{"username":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newAuthHandler(t)
			rec := postJSON(t, h.Register, "/register", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != "Please provide username, email, and password." {
				t.Errorf("message = %q", msg)
			}
		})
	}
}

func TestRegister_Conflicts(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t)
	rec := postJSON(t, h.Register, "/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed registration failed with %d", rec.Code)
	}

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			"duplicate username",
			`{"username":"alice","email":"other@example.com","password":"pw"}`,
			"username already exists.",
		},
		{
			"duplicate email",
			`{"username":"bob","email":"alice@example.com","password":"pw"}`,
			"email already exists.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/register", tt.body)

			if rec.Code != http.StatusConflict {
				t.Fatalf("status = %d, want 409", rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t)
	if rec := postJSON(t, h.Register, "/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed registration failed with %d", rec.Code)
	}

	rec := postJSON(t, h.Login, "/login", `{"username":"alice","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JWTToken == "" {
		t.Error("expected a jwtToken in the response")
	}
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t)
	if rec := postJSON(t, h.Register, "/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed registration failed with %d", rec.Code)
	}

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing fields", `{"username":"alice"}`, "Please provide username and password."},
		{"malformed json", `{"username":`, "Please provide username and password."},
		{"unknown user", `{"username":"mallory","password":"pw"}`, "Invalid username. Please register if you are new."},
		{"wrong password", `{"username":"alice","password":"nope"}`, "Invalid password."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Login, "/login", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
