package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redispkg "talentpact.backend/pkg/redis"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := redispkg.GetClient()
	redispkg.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redispkg.SetClient(prev) })
	return mr
}

func TestCategoryCache_RoundTripAndInvalidate(t *testing.T) {
	mr := setupRedis(t)
	c := NewCategoryCache(time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, []string{"Design", "Web"}))
	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Design", "Web"}, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, nil))
	got, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(categoriesKey))
}

func TestCategoryCache_CorruptEntryIsMiss(t *testing.T) {
	mr := setupRedis(t)
	require.NoError(t, mr.Set(categoriesKey, "{not json"))

	_, ok, err := NewCategoryCache(time.Minute).Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryCache_RedisErrors(t *testing.T) {
	origGet := redisGet
	t.Cleanup(func() { redisGet = origGet })
	redisGet = func(context.Context, string) (string, error) {
		return "", errors.New("redis down")
	}

	_, _, err := NewCategoryCache(time.Minute).Get(context.Background())
	assert.Error(t, err)
}
