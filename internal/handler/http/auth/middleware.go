package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"elbouchra-cms/internal/handler/http/respond"
	serviceauth "elbouchra-cms/internal/service/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the authenticated identity stored by RequireAdmin.
func IdentityFromContext(ctx context.Context) (serviceauth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(serviceauth.Identity)
	return id, ok
}

// RequireAdmin wraps a handler so only requests carrying a valid admin JWT
// reach it. The identity is stored on the request context.
func RequireAdmin(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := validateBearer(r, secret)
		if err != nil {
			respond.ErrorMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if identity.Role != serviceauth.RoleAdmin {
			respond.ErrorMessage(w, http.StatusForbidden, "forbidden")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validateBearer(r *http.Request, secret []byte) (serviceauth.Identity, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return serviceauth.Identity{}, fmt.Errorf("missing bearer token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return serviceauth.Identity{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return serviceauth.Identity{}, fmt.Errorf("invalid token")
	}

	return serviceauth.Identity{Username: claims.Subject, Role: claims.Role}, nil
}
