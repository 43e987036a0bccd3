package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-signing-secret"

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	return svc
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenService(""); err == nil {
		t.Fatal("expected error for empty secret, got nil")
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", claims.Username)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %q", claims.Subject)
	}
}

func TestTokenService_NoExpiry(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	// Token validity is signature correctness only: no exp claim is set.
	if claims.ExpiresAt != nil {
		t.Errorf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}

func TestTokenService_Verify_Rejections(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	otherSvc, err := NewTokenService("a-different-secret-entirely")
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	foreignToken, err := otherSvc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Token signed with an unexpected algorithm must be rejected even
	// though the "none" family carries no signature to forge.
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("building none token failed: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty token", "", ErrMissingToken},
		{"garbage token", "not.a.jwt", ErrInvalidToken},
		{"wrong signing key", foreignToken, ErrInvalidToken},
		{"none algorithm", noneToken, ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Verify(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestTokenService_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	t1, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	// jti is random; issuing twice in the same instant must still differ.
	time.Sleep(time.Millisecond)
	t2, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if t1 == t2 {
		t.Error("two issued tokens should not be identical")
	}
}
