package documentcache

import (
	"context"
	"time"

	"github.com/bahnboard/bahnboard/pkg/redis_client"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
)

// Cache holds raw upstream documents keyed by resource path. Hourly plan and
// station documents are immutable once published, so serving them from redis
// is always safe.
type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup(expiration time.Duration) {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(expiration))

	c.Cache = cache.New[string](redisStore)
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.Cache.Get(ctx, key)
	if err != nil {
		return "", false
	}

	return value, true
}

func (c *Cache) Set(ctx context.Context, key string, value string) {
	// Write failures are ignored, the document is refetched next time.
	c.Cache.Set(ctx, key, value)
}
