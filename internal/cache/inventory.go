package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userByNameKeyPrefix = "user:uname:%s"
)

// TTLs for cached lookups. The caller-resolution cache is short so profile
// edits propagate quickly even if an invalidation is missed.
const (
	UserTTL = 5 * time.Minute
)

// UserByNameKey returns the cache key for a user looked up by username.
func UserByNameKey(username string) string {
	return fmt.Sprintf(userByNameKeyPrefix, username)
}

// Invalidate removes a key (best-effort, no-op without a client).
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops the cached username lookup for the given user.
func InvalidateUser(ctx context.Context, username string) {
	Invalidate(ctx, UserByNameKey(username))
}
