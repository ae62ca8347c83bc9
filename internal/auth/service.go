package auth

import (
	"context"
	"errors"
	"fmt"
)

// Service handles registration and login against the account store.
// It owns the credential rules (required fields, role validation,
// hashing discipline); the repository owns uniqueness.
type Service struct {
	users  UserRepository
	tokens *TokenService
}

// NewService creates an auth Service over the given repository and token
// service.
func NewService(users UserRepository, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a new account.
//
// Email and password are required (ErrMissingFields). An empty role
// defaults to user; anything outside the enumerated roles is rejected
// with ErrInvalidRole rather than stored. A duplicate email surfaces as
// ErrEmailExists. The stored record carries only the Argon2id hash,
// never the plaintext.
func (s *Service) Register(ctx context.Context, email, password string, role Role) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: malformed email", ErrMissingFields)
	}

	if role == "" {
		role = RoleUser
	}
	if !IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token.
//
// Unknown identifier and password mismatch both yield
// ErrInvalidCredentials: a single signal, so callers cannot enumerate
// registered emails. A corrupt stored hash is treated the same way
// rather than surfacing internals.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}
