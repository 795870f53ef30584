package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed credential store. The TTL bounds
// how long a browser session can sit idle before the credential is
// dropped regardless of the token's own validity.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "credential:",
		ttl:    ttl,
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Save(ctx context.Context, sessionID, token string) error {
	if sessionID == "" || token == "" {
		return fmt.Errorf("session: missing session id or token")
	}
	return r.client.Set(ctx, r.key(sessionID), token, r.ttl).Err()
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrNoCredential
	}
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
