package preference

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the preferences of one owner in a redis hash.
type RedisStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisStore stores values in the hash "preferences:<namespace>".
func NewRedisStore(client redis.Cmdable, namespace string) *RedisStore {
	return &RedisStore{client: client, key: "preferences:" + namespace}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, s.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.HSet(ctx, s.key, key, value).Err()
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.client.HDel(ctx, s.key, key).Err()
}
