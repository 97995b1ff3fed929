package auth_test

import (
	"context"
	"errors"
	"testing"

	"elbouchra-cms/internal/service/auth"
)

type stubProvider struct {
	identity auth.Identity
	err      error
}

func (p *stubProvider) Authenticate(context.Context, auth.Credentials) (auth.Identity, error) {
	return p.identity, p.err
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc := auth.NewService(&stubProvider{
		identity: auth.Identity{Username: "admin", Role: auth.RoleAdmin},
	})

	got, err := svc.Login(context.Background(), auth.Credentials{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.Role != auth.RoleAdmin {
		t.Errorf("Role = %q, want %q", got.Role, auth.RoleAdmin)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		creds auth.Credentials
	}{
		{name: "missing username", creds: auth.Credentials{Password: "secret"}},
		{name: "missing password", creds: auth.Credentials{Username: "admin"}},
		{name: "both missing", creds: auth.Credentials{}},
	}

	svc := auth.NewService(&stubProvider{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Login(context.Background(), tt.creds)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLogin_ProviderRejects(t *testing.T) {
	t.Parallel()

	svc := auth.NewService(&stubProvider{err: auth.ErrInvalidCredentials})

	_, err := svc.Login(context.Background(), auth.Credentials{Username: "admin", Password: "wrong"})
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}
