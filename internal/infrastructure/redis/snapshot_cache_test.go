package redisstore_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"metalprices-service/internal/application"
	"metalprices-service/internal/domain"
	redisstore "metalprices-service/internal/infrastructure/redis"
)

func TestCache_RoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redisstore.NewCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "2026-02-26")
	require.NoError(t, err)
	require.False(t, ok)

	price := 103570.0
	res := application.LatestResult{
		Record: domain.DailyRecord{Date: "2026-02-26", Shanghai: &price},
	}
	require.NoError(t, cache.Set(ctx, "2026-02-26", res))

	got, ok, err := cache.Get(ctx, "2026-02-26")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2026-02-26", got.Record.Date)
	require.NotNil(t, got.Record.Shanghai)
	require.Equal(t, 103570.0, *got.Record.Shanghai)
}

func TestCache_Expiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redisstore.NewCache(client, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "2026-02-26", application.LatestResult{}))
	mr.FastForward(2 * time.Second)

	_, ok, err := cache.Get(ctx, "2026-02-26")
	require.NoError(t, err)
	require.False(t, ok)
}
