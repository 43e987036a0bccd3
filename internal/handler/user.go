package handler

import (
	"net/http"
)

// UserHandler serves the token-protected user endpoints.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Greet confirms that the caller presented a valid token.
//
// GET /user
func (h *UserHandler) Greet(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome, authorized user!")
}

// Logout is informational only. The server keeps no session state, so
// logging out is a matter of the client discarding its token.
//
// GET /logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK,
		"Successfully logged out. Please clear your JWT token and user session information.")
}
