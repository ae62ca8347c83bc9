package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := testTokens(t)
	user := &User{ID: "usr-001", Role: RoleAdmin}

	token, err := ts.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Subject != "usr-001" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "usr-001")
	}

	if claims.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, RoleAdmin)
	}

	if claims.IssuedAt == nil {
		t.Error("IssuedAt should be set")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		t.Error("newly issued token should not be expired")
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	ts := NewTokenService("test-secret-key-at-least-32-characters", 0)

	if ts.TTL() != time.Hour {
		t.Errorf("TTL() = %v, want %v", ts.TTL(), time.Hour)
	}

	token, err := ts.Issue(&User{ID: "usr-001", Role: RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if lifetime != time.Hour {
		t.Errorf("token lifetime = %v, want %v", lifetime, time.Hour)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("correct-secret-key-32-characters-xx", time.Hour)
	verifier := NewTokenService("wrong-secret-key-32-characters-xxxx", time.Hour)

	token, err := issuer.Issue(&User{ID: "usr-001", Role: RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() with wrong secret = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	secret := "test-secret-key-at-least-32-characters"
	ts := NewTokenService(secret, time.Hour)

	// Sign an already-expired token with the correct secret; only the
	// expiry should fail verification.
	now := time.Now()
	expired := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "usr-001",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
		Role: RoleUser,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	_, err = ts.Verify(signed)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() expired token = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	ts := testTokens(t)

	token, err := ts.Issue(&User{ID: "usr-001", Role: RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip a character in the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 JWT segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ts.Verify(tampered)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() tampered token = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	ts := testTokens(t)

	for _, token := range []string{"", "not-a-jwt", "abc.def"} {
		if _, err := ts.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q) = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestTokenService_MissingClaims(t *testing.T) {
	secret := "test-secret-key-at-least-32-characters"
	ts := NewTokenService(secret, time.Hour)

	// Token without a role claim
	noRole := jwt.RegisteredClaims{
		Subject:   "usr-001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noRole).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := ts.Verify(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() without role = %v, want ErrTokenInvalid", err)
	}
}
