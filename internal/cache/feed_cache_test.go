package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/paginator"
)

func setupCache(t *testing.T) (*FeedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewFeedCache(rdb, time.Minute), mr
}

func samplePage() *paginator.Page[*model.Post] {
	p := paginator.New[*model.Post](1, 10, 1)
	p.Items = []*model.Post{{ID: 1, Text: "hello", AuthorID: 7}}
	return p
}

func TestFeedCacheRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, hit := c.GetIndex(ctx, 1)
	assert.False(t, hit)

	c.SetIndex(ctx, 1, samplePage())
	got, hit := c.GetIndex(ctx, 1)
	require.True(t, hit)
	assert.Equal(t, uint(1), got.Items[0].ID)
	assert.Equal(t, "hello", got.Items[0].Text)
	assert.Equal(t, int64(1), got.TotalItems)
}

func TestFeedCacheInvalidate(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.SetIndex(ctx, 1, samplePage())
	c.Invalidate(ctx)

	_, hit := c.GetIndex(ctx, 1)
	assert.False(t, hit, "write must drop cached pages")
}

func TestFeedCacheTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewFeedCache(rdb, time.Second)
	ctx := context.Background()

	c.SetIndex(ctx, 1, samplePage())
	mr.FastForward(2 * time.Second)

	_, hit := c.GetIndex(ctx, 1)
	assert.False(t, hit)
}

func TestNilFeedCacheIsNoop(t *testing.T) {
	var c *FeedCache
	ctx := context.Background()
	c.SetIndex(ctx, 1, samplePage())
	c.Invalidate(ctx)
	_, hit := c.GetIndex(ctx, 1)
	assert.False(t, hit)
}
