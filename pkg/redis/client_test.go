package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClient(t *testing.T, c *goredis.Client) {
	t.Helper()
	prev := client
	SetClient(c)
	t.Cleanup(func() { client = prev })
}

func TestInit(t *testing.T) {
	prev := client
	t.Cleanup(func() { client = prev })

	assert.Error(t, Init("://invalid-url", ""))

	mr := miniredis.RunT(t)
	require.NoError(t, Init("redis://"+mr.Addr(), ""))
	assert.NotNil(t, GetClient())
	require.NoError(t, Close())
}

func TestInit_PingFailureKeepsPreviousClient(t *testing.T) {
	prev := client
	origPing := pingClient
	t.Cleanup(func() {
		client = prev
		pingClient = origPing
	})

	client = nil
	pingClient = func(context.Context, *goredis.Client) error { return errors.New("down") }
	assert.Error(t, Init("redis://127.0.0.1:6379", "secret"))
	assert.Nil(t, GetClient())
}

func TestHelpersAgainstMiniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	withClient(t, goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))
	v, err := Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	ok, err := SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	assert.True(t, IsNil(err))
}

func TestHelpersWithoutClient(t *testing.T) {
	withClient(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, Set(ctx, "k", "v", time.Second), ErrNotConfigured)
	_, err := Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, Del(ctx, "k"), ErrNotConfigured)
	_, err = SetNX(ctx, "k", "v", time.Second)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.NoError(t, Close())
}
