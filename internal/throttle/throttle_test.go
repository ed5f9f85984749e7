package throttle

import (
	"context"
	"errors"
	"testing"
	"time"

	"annotate-me/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// counterCache 以 map 模擬 INCR / EXPIRE / TTL
// 沒有設定過期時間的 key，TTL 回傳 -1 (與 go-redis 相同)
func counterCache(expires map[string]time.Duration) *cache.FakeCache {
	counts := map[string]int64{}
	return &cache.FakeCache{
		IncrFn: func(_ context.Context, key string) *redis.IntCmd {
			counts[key]++
			return redis.NewIntResult(counts[key], nil)
		},
		ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			expires[key] = ttl
			return redis.NewBoolResult(true, nil)
		},
		TTLFn: func(_ context.Context, key string) *redis.DurationCmd {
			if ttl, ok := expires[key]; ok {
				return redis.NewDurationResult(ttl, nil)
			}
			return redis.NewDurationResult(-1, nil)
		},
	}
}

func TestAllow(t *testing.T) {
	ctx := context.Background()
	expires := map[string]time.Duration{}
	l := New(counterCache(expires), 2, time.Minute)

	for i, want := range []bool{true, true, false, false} {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.Equal(t, want, ok, "attempt %d", i+1)
	}
	require.Equal(t, map[string]time.Duration{"login_attempts:10.0.0.1": time.Minute}, expires)

	// 不同 key 各自計數
	ok, err := l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllowErrors(t *testing.T) {
	ctx := context.Background()

	l := New(&cache.FakeCache{IncrFn: func(context.Context, string) *redis.IntCmd {
		return redis.NewIntResult(0, errors.New("incr"))
	}}, 1, time.Minute)
	ok, err := l.Allow(ctx, "k")
	require.Error(t, err)
	require.False(t, ok)

	l = New(&cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(1, nil) },
		ExpireFn: func(context.Context, string, time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(false, errors.New("expire"))
		},
	}, 1, time.Minute)
	ok, err = l.Allow(ctx, "k")
	require.Error(t, err)
	require.True(t, ok)
}

func TestAllowRepairsMissingExpiry(t *testing.T) {
	ctx := context.Background()
	expires := map[string]time.Duration{}
	c := counterCache(expires)
	setExpire := c.ExpireFn
	expireCalls := 0
	c.ExpireFn = func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
		expireCalls++
		if expireCalls == 1 {
			return redis.NewBoolResult(false, errors.New("expire"))
		}
		return setExpire(ctx, key, ttl)
	}
	l := New(c, 2, time.Minute)

	// 第一次設定過期失敗，仍然放行
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.Error(t, err)
	require.True(t, ok)
	require.Empty(t, expires)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.True(t, ok)

	// 超過上限時補上過期時間，之後不再重設
	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, time.Minute, expires["login_attempts:10.0.0.1"])
	require.Equal(t, 2, expireCalls)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 2, expireCalls)
}

func TestAllowTTLErrors(t *testing.T) {
	ctx := context.Background()
	over := func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(5, nil) }

	l := New(&cache.FakeCache{
		IncrFn: over,
		TTLFn: func(context.Context, string) *redis.DurationCmd {
			return redis.NewDurationResult(0, errors.New("ttl"))
		},
	}, 1, time.Minute)
	ok, err := l.Allow(ctx, "k")
	require.Error(t, err)
	require.False(t, ok)

	l = New(&cache.FakeCache{
		IncrFn: over,
		TTLFn: func(context.Context, string) *redis.DurationCmd {
			return redis.NewDurationResult(-1, nil)
		},
		ExpireFn: func(context.Context, string, time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(false, errors.New("expire"))
		},
	}, 1, time.Minute)
	ok, err = l.Allow(ctx, "k")
	require.Error(t, err)
	require.False(t, ok)
}
