package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/logger"
	"github.com/d60-Lab/yatube/pkg/paginator"
)

// FeedCache caches rendered index feed pages in Redis with a short TTL.
// Writes bump a version counter instead of scanning keys, so stale pages
// simply age out under the old version.
type FeedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewFeedCache returns nil when no Redis client is configured; a nil
// FeedCache is a no-op and every read is a miss.
func NewFeedCache(rdb *redis.Client, ttl time.Duration) *FeedCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &FeedCache{rdb: rdb, ttl: ttl}
}

const verKey = "feed:index:ver"

func (c *FeedCache) pageKey(ctx context.Context, page int) string {
	ver, err := c.rdb.Get(ctx, verKey).Int64()
	if err != nil {
		ver = 0
	}
	return fmt.Sprintf("feed:index:v%d:p%d", ver, page)
}

// GetIndex returns the cached page and whether it was a hit.
func (c *FeedCache) GetIndex(ctx context.Context, page int) (*paginator.Page[*model.Post], bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, c.pageKey(ctx, page)).Bytes()
	if err != nil {
		return nil, false
	}
	var out paginator.Page[*model.Post]
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (c *FeedCache) SetIndex(ctx context.Context, page int, p *paginator.Page[*model.Post]) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.pageKey(ctx, page), payload, c.ttl).Err(); err != nil {
		logger.Warn("feed cache set failed", zap.Error(err))
	}
}

// Invalidate drops all cached index pages after a post write.
func (c *FeedCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, verKey).Err(); err != nil {
		logger.Warn("feed cache invalidate failed", zap.Error(err))
	}
}
