package popup

import (
	"context"
	"fmt"
	"time"

	"github.com/greenvalley-school/school-cms-api/utils/cache"
)

// SessionTTL bounds how long popup flags survive in Redis. Browser session
// cookies normally die first; the TTL just keeps abandoned sessions from
// accumulating.
const SessionTTL = 12 * time.Hour

// RedisFlagStore persists popup flags in Redis, keyed by visitor session
type RedisFlagStore struct {
	cache *cache.RedisCache
}

// NewRedisFlagStore creates a Redis-backed flag store
func NewRedisFlagStore(redisCache *cache.RedisCache) *RedisFlagStore {
	return &RedisFlagStore{cache: redisCache}
}

func flagKey(sessionID string, flag Flag) string {
	return fmt.Sprintf("popup:%s:%s", sessionID, flag)
}

// Get reports whether the flag is set for the session
func (s *RedisFlagStore) Get(ctx context.Context, sessionID string, flag Flag) (bool, error) {
	return s.cache.Exists(ctx, flagKey(sessionID, flag))
}

// Set marks the flag for the session
func (s *RedisFlagStore) Set(ctx context.Context, sessionID string, flag Flag) error {
	return s.cache.Set(ctx, flagKey(sessionID, flag), "1", SessionTTL)
}
