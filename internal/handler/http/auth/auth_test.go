package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"elbouchra-cms/internal/handler/http/auth"
	serviceauth "elbouchra-cms/internal/service/auth"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef01")

func newService(t *testing.T) *serviceauth.Service {
	t.Helper()
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_USER_PASSWORD", "tr3s-s0lide-mot-de-passe")

	provider, err := auth.NewEnvProvider()
	if err != nil {
		t.Fatalf("NewEnvProvider() error = %v", err)
	}
	return serviceauth.NewService(provider)
}

func TestNewEnvProvider_Validation(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
	}{
		{name: "missing user", user: "", password: "tr3s-s0lide-mot-de-passe"},
		{name: "missing password", user: "admin", password: ""},
		{name: "short password", user: "admin", password: "short"},
		{name: "weak password", user: "admin", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_USER", tt.user)
			t.Setenv("ADMIN_USER_PASSWORD", tt.password)

			if _, err := auth.NewEnvProvider(); err == nil {
				t.Error("NewEnvProvider() error = nil, want error")
			}
		})
	}
}

func TestEnvProvider_Authenticate(t *testing.T) {
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_USER_PASSWORD", "tr3s-s0lide-mot-de-passe")

	provider, err := auth.NewEnvProvider()
	if err != nil {
		t.Fatalf("NewEnvProvider() error = %v", err)
	}

	identity, err := provider.Authenticate(context.Background(), serviceauth.Credentials{
		Username: "admin",
		Password: "tr3s-s0lide-mot-de-passe",
	})
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if identity.Role != serviceauth.RoleAdmin {
		t.Errorf("Role = %q, want %q", identity.Role, serviceauth.RoleAdmin)
	}

	_, err = provider.Authenticate(context.Background(), serviceauth.Credentials{
		Username: "admin",
		Password: "wrong-password-entirely",
	})
	if !errors.Is(err, serviceauth.ErrInvalidCredentials) {
		t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoadJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "valid", secret: "a-genuinely-long-random-secret-value-1234"},
		{name: "missing", secret: "", wantErr: true},
		{name: "too short", secret: "short", wantErr: true},
		{name: "weak", secret: "0123456789abcdef0123456789abcdef", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)

			_, err := auth.LoadJWTSecret()
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadJWTSecret() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenHandler(t *testing.T) {
	svc := newService(t)
	h := auth.NewTokenHandler(svc, testSecret)

	body := `{"username":"admin","password":"tr3s-s0lide-mot-de-passe"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	claims := &auth.Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return testSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "admin")
	}
	if claims.Role != serviceauth.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, serviceauth.RoleAdmin)
	}
}

func TestTokenHandler_BadCredentials(t *testing.T) {
	svc := newService(t)
	h := auth.NewTokenHandler(svc, testSecret)

	body := `{"username":"admin","password":"definitely-not-it"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTokenHandler_BadBody(t *testing.T) {
	svc := newService(t)
	h := auth.NewTokenHandler(svc, testSecret)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func signToken(t *testing.T, role string, expiresAt time.Time, secret []byte) string {
	t.Helper()
	claims := auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.IdentityFromContext(r.Context()); !ok {
			t.Error("identity missing from context")
		}
		w.WriteHeader(http.StatusOK)
	})
	h := auth.RequireAdmin(testSecret, next)

	token := signToken(t, serviceauth.RoleAdmin, time.Now().Add(time.Hour), testSecret)
	req := httptest.NewRequest(http.MethodPost, "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireAdmin_Rejections(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := auth.RequireAdmin(testSecret, next)

	otherSecret := []byte("another-32-byte-minimum-secret-value!")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{
			name:   "missing header",
			header: "",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "not bearer",
			header: "Basic abcdef",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer " + signToken(t, serviceauth.RoleAdmin, time.Now().Add(-time.Minute), testSecret),
			want:   http.StatusUnauthorized,
		},
		{
			name:   "wrong signature",
			header: "Bearer " + signToken(t, serviceauth.RoleAdmin, time.Now().Add(time.Hour), otherSecret),
			want:   http.StatusUnauthorized,
		},
		{
			name:   "wrong role",
			header: "Bearer " + signToken(t, "viewer", time.Now().Add(time.Hour), testSecret),
			want:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/articles", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
