package billing

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// IdempotencyStore maps client idempotency keys to recorded payment IDs
// so a retried request replays the original payment instead of charging
// twice. Get returns "" when the key is unknown.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, paymentID string) error
}

// RedisIdempotencyStore keeps idempotency keys in Redis with a TTL.
type RedisIdempotencyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

const idempotencyPrefix = "payment:idem:"

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.Client.Get(ctx, idempotencyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisIdempotencyStore) Set(ctx context.Context, key, paymentID string) error {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return s.Client.Set(ctx, idempotencyPrefix+key, paymentID, ttl).Err()
}
