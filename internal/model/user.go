// Package model defines domain entities for the application.
package model

import (
	"strings"
	"time"
)

// User represents a registered account.
// PasswordHash holds the Argon2id PHC string; the plaintext password is
// never stored or logged.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeEmail lowercases an email address for storage and lookup.
// Emails are unique case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
