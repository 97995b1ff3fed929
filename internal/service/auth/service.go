// Package auth defines the authentication contracts shared by the HTTP layer.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when authentication fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RoleAdmin is the only role with write access to association content.
const RoleAdmin = "admin"

// Credentials carries a username and password pair.
type Credentials struct {
	Username string
	Password string
}

// Identity describes an authenticated user.
type Identity struct {
	Username string
	Role     string
}

// Provider authenticates credentials against a backing store.
type Provider interface {
	// Authenticate returns the identity for valid credentials and
	// ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, creds Credentials) (Identity, error)
}

// Service wraps a Provider and is the entry point used by handlers.
type Service struct {
	provider Provider
}

// NewService creates an authentication service backed by the given provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Login validates credentials and returns the resulting identity.
func (s *Service) Login(ctx context.Context, creds Credentials) (Identity, error) {
	if creds.Username == "" || creds.Password == "" {
		return Identity{}, ErrInvalidCredentials
	}
	return s.provider.Authenticate(ctx, creds)
}
