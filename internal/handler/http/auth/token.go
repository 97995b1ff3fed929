package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"elbouchra-cms/internal/handler/http/respond"
	serviceauth "elbouchra-cms/internal/service/auth"
)

const tokenTTL = time.Hour

// minSecretLength keeps HS256 keys out of brute-force range.
const minSecretLength = 32

var weakSecrets = map[string]struct{}{
	"secret":                           {},
	"changeme":                         {},
	"your-secret-key":                  {},
	"0123456789abcdef0123456789abcdef": {},
}

// LoadJWTSecret reads and validates the JWT_SECRET environment variable.
func LoadJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	if _, weak := weakSecrets[strings.ToLower(secret)]; weak {
		return nil, fmt.Errorf("JWT_SECRET is too weak")
	}
	return []byte(secret), nil
}

// Claims is the JWT payload issued to authenticated admins.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenHandler issues signed JWTs for valid admin credentials.
type TokenHandler struct {
	service *serviceauth.Service
	secret  []byte
	now     func() time.Time
}

// NewTokenHandler creates a token handler with the given auth service and
// signing secret.
func NewTokenHandler(service *serviceauth.Service, secret []byte) *TokenHandler {
	return &TokenHandler{service: service, secret: secret, now: time.Now}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ServeHTTP handles POST /auth/token.
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.ErrorMessage(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.service.Login(r.Context(), serviceauth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, serviceauth.ErrInvalidCredentials) {
			respond.ErrorMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	expiresAt := h.now().Add(tokenTTL)
	claims := Claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(h.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, tokenResponse{Token: signed, ExpiresAt: expiresAt})
}
