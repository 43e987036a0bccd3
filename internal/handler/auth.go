package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PradeepKumarReddy-098/pioneer/internal/handler/dto"
	"github.com/PradeepKumarReddy-098/pioneer/internal/middleware"
	"github.com/PradeepKumarReddy-098/pioneer/internal/service"
)

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	accounts *service.AccountService
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts *service.AccountService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Register creates a new user account.
//
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Please provide username, email, and password.")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide username, email, and password.")
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameExists):
			writeMessage(w, http.StatusConflict, "username already exists.")
		case errors.Is(err, service.ErrEmailExists):
			writeMessage(w, http.StatusConflict, "email already exists.")
		default:
			h.logger.Error("registration failed",
				slog.String("error", err.Error()),
				slog.String("request_id", middleware.GetRequestID(r.Context())),
			)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)

	writeMessage(w, http.StatusCreated, "Registration successful!")
}

// Login verifies credentials and returns a bearer token.
//
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Please provide username and password.")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide username and password.")
		return
	}

	token, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownUser):
			writeMessage(w, http.StatusBadRequest, "Invalid username. Please register if you are new.")
		case errors.Is(err, service.ErrBadPassword):
			writeMessage(w, http.StatusBadRequest, "Invalid password.")
		default:
			h.logger.Error("login failed",
				slog.String("error", err.Error()),
				slog.String("request_id", middleware.GetRequestID(r.Context())),
			)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.logger.Info("user logged in",
		slog.String("username", req.Username),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)

	writeJSON(w, http.StatusOK, dto.LoginResponse{JWTToken: token})
}
