package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const usernameTTL = time.Hour

// UsernameCache caches user id → display name lookups for the author join
// on post reads. Usernames are immutable in this system, so a long TTL is
// safe; the TTL only bounds memory, not staleness.
// Key format: username:<user_id>
type UsernameCache struct {
	client *redis.Client
}

// NewUsernameCache creates a UsernameCache wrapping the given Redis client.
func NewUsernameCache(client *redis.Client) *UsernameCache {
	return &UsernameCache{client: client}
}

// Get returns the cached username and whether it was present. Transport
// errors are reported as a miss: the caller falls back to the store.
func (c *UsernameCache) Get(ctx context.Context, userID string) (string, bool) {
	name, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		return "", false
	}
	return name, true
}

// Set records a username (expires after usernameTTL).
func (c *UsernameCache) Set(ctx context.Context, userID, username string) error {
	if err := c.client.Set(ctx, c.key(userID), username, usernameTTL).Err(); err != nil {
		return fmt.Errorf("cache username: %w", err)
	}
	return nil
}

func (c *UsernameCache) key(userID string) string {
	return "username:" + userID
}
