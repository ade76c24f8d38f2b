package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session records in Redis with a TTL matching the
// session expiry, so stale records evict themselves.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "session:"}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.Token == "" || s.UserID == 0 {
		return fmt.Errorf("session: missing token or user_id")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(s.Token), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
