// Package dto defines request and response shapes for the HTTP API.
package dto

// RegisterRequest is the body for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MessageResponse is the generic envelope for informational responses
// and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
}
