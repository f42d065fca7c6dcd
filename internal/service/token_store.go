package service

import (
	"context"
	"fmt"
	"time"

	"property-backoffice/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the set of issued, non-revoked tokens. A token is only
// accepted while its entry exists.
type TokenStore interface {
	Save(ctx context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string) error
	RevokeAll(ctx context.Context, secretaryID uint) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(tokenType jwt.TokenType, secretaryID uint, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, secretaryID, tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(tokenType, secretaryID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(tokenType, secretaryID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string) error {
	return s.client.Del(ctx, tokenKey(tokenType, secretaryID, tokenID)).Err()
}

// RevokeAll deletes every access and refresh token of a secretary
// (password change, account removal).
func (s *redisTokenStore) RevokeAll(ctx context.Context, secretaryID uint) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := tokenKey(tokenType, secretaryID, "*")
		iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
