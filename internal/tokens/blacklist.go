// Package tokens provides the Redis-backed JWT revocation store.
// Revoked token IDs (jti claims) are held until their natural expiry;
// without Redis the store degrades to accepting all unexpired tokens.
package tokens

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "blacklist:"

// Blacklist records revoked JWT IDs.
type Blacklist struct {
	client *redis.Client
}

// NewBlacklist returns a Blacklist backed by the given Redis client.
// A nil client is allowed and disables revocation.
func NewBlacklist(client *redis.Client) *Blacklist {
	return &Blacklist{client: client}
}

// NewRedisClient connects to Redis at addr. Addr may be a plain
// host:port or a redis:// URL. Returns nil when addr is empty or
// invalid, which disables revocation rather than failing startup.
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without revocation store)", addr, err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	return redis.NewClient(opts)
}

// Revoke marks the jti as revoked until ttl elapses. Revoking with a
// non-positive ttl is a no-op: the token has already expired.
func (b *Blacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if b.client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether the jti has been revoked. Store errors are
// treated as not-revoked so an unavailable Redis does not lock
// everyone out.
func (b *Blacklist) IsRevoked(ctx context.Context, jti string) bool {
	if b.client == nil || jti == "" {
		return false
	}
	n, err := b.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// Ping checks connectivity to the revocation store.
func (b *Blacklist) Ping(ctx context.Context) error {
	if b.client == nil {
		return nil
	}
	return b.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection.
func (b *Blacklist) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}
