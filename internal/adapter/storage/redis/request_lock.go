package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RequestLock implements ports.RequestLock with Redis SET NX. It marks a
// purchase request as in flight so a concurrent duplicate is turned away
// before it reaches the database.
//
// Each holder stores a random token. Release only removes a lock the caller
// still owns, so a holder whose TTL lapsed cannot free a newer holder's lock.
type RequestLock struct {
	client *goredis.Client
	prefix string
}

// NewRequestLock creates a new Redis-backed request lock.
func NewRequestLock(client *goredis.Client) *RequestLock {
	return &RequestLock{
		client: client,
		prefix: "tfn_inflight:",
	}
}

// Acquire sets the key if absent and returns the owner token.
// The token is empty if another holder owns the key.
func (l *RequestLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis request lock acquire: %w", err)
	}
	if result != "OK" {
		return "", nil
	}
	return token, nil
}

// Release deletes the key if it is still held with token.
func (l *RequestLock) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis request lock release: %w", err)
	}
	return nil
}
