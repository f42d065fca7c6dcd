package middleware

import (
	"context"
	"net/http"
	"strings"

	"property-backoffice/internal/service"
	"property-backoffice/pkg/jwt"
	"property-backoffice/pkg/response"
)

type contextKey string

const (
	SecretaryIDKey    contextKey = "secretary_id"
	SecretaryEmailKey contextKey = "secretary_email"
	TokenIDKey        contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore service.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

type authFailure struct {
	status  int
	message string
}

// resolve validates the bearer token and returns the request context
// carrying the secretary identity.
func (m *AuthMiddleware) resolve(r *http.Request) (context.Context, *authFailure) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, &authFailure{http.StatusUnauthorized, "Authorization header is required"}
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid authorization header format"}
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid or expired token"}
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid token type"}
	}

	// Check if token exists in the store (not revoked)
	exists, err := m.tokenStore.Exists(r.Context(), jwt.AccessToken, claims.SecretaryID, claims.TokenID)
	if err != nil {
		return nil, &authFailure{http.StatusInternalServerError, "Failed to validate token"}
	}
	if !exists {
		return nil, &authFailure{http.StatusUnauthorized, "Token has been revoked"}
	}

	return WithSecretary(r.Context(), claims.SecretaryID, claims.Email, claims.TokenID), nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, failure := m.resolve(r)
		if failure != nil {
			if failure.status == http.StatusInternalServerError {
				response.InternalServerError(w, failure.message)
				return
			}
			response.Unauthorized(w, failure.message)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches the secretary identity when a valid token is
// sent and lets anonymous requests through unchanged.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, failure := m.resolve(r)
		if failure != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSecretary returns ctx carrying the authenticated secretary.
func WithSecretary(ctx context.Context, secretaryID uint, email, tokenID string) context.Context {
	ctx = context.WithValue(ctx, SecretaryIDKey, secretaryID)
	ctx = context.WithValue(ctx, SecretaryEmailKey, email)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}

// GetSecretaryIDFromContext extracts secretary ID from context
func GetSecretaryIDFromContext(ctx context.Context) (uint, bool) {
	secretaryID, ok := ctx.Value(SecretaryIDKey).(uint)
	return secretaryID, ok
}

// GetSecretaryEmailFromContext extracts secretary email from context
func GetSecretaryEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(SecretaryEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
