// Package auth provides token issuance and admin authorization for the HTTP API.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	serviceauth "elbouchra-cms/internal/service/auth"
)

const minPasswordLength = 12

// weakPasswords lists values that are rejected outright regardless of length.
var weakPasswords = map[string]struct{}{
	"password":     {},
	"password123":  {},
	"admin":        {},
	"changeme":     {},
	"elbouchra":    {},
	"123456789012": {},
}

// EnvProvider authenticates the single admin account configured through
// the ADMIN_USER and ADMIN_USER_PASSWORD environment variables.
type EnvProvider struct {
	username string
	password string
}

// NewEnvProvider reads the admin credentials from the environment and
// validates them. It fails fast on missing or weak configuration so a
// misconfigured deployment never starts.
func NewEnvProvider() (*EnvProvider, error) {
	username := os.Getenv("ADMIN_USER")
	password := os.Getenv("ADMIN_USER_PASSWORD")

	if username == "" {
		return nil, fmt.Errorf("ADMIN_USER is not set")
	}
	if password == "" {
		return nil, fmt.Errorf("ADMIN_USER_PASSWORD is not set")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("ADMIN_USER_PASSWORD must be at least %d characters", minPasswordLength)
	}
	if _, weak := weakPasswords[strings.ToLower(password)]; weak {
		return nil, fmt.Errorf("ADMIN_USER_PASSWORD is too weak")
	}

	return &EnvProvider{username: username, password: password}, nil
}

// Authenticate compares the supplied credentials in constant time.
func (p *EnvProvider) Authenticate(_ context.Context, creds serviceauth.Credentials) (serviceauth.Identity, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(p.username))
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(p.password))
	if userMatch&passMatch != 1 {
		return serviceauth.Identity{}, serviceauth.ErrInvalidCredentials
	}
	return serviceauth.Identity{Username: p.username, Role: serviceauth.RoleAdmin}, nil
}
