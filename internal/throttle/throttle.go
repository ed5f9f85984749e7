// File: internal/throttle/throttle.go
package throttle

import (
	"context"
	"fmt"
	"time"

	"annotate-me/internal/cache"
)

const keyPrefix = "login_attempts:"

// Limiter 以固定時間窗計算每個 key 的送出次數
type Limiter struct {
	cache  cache.Cache
	limit  int64
	window time.Duration
}

// New limit 為每個時間窗允許的次數
func New(c cache.Cache, limit int, window time.Duration) *Limiter {
	return &Limiter{cache: c, limit: int64(limit), window: window}
}

// Allow 計數加一，超過上限回傳 false
// 第一次計數時設定過期時間作為時間窗；超過上限時若 key 沒有過期時間就補上
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + key
	n, err := l.cache.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("Allow: %w", err)
	}
	allowed := n <= l.limit

	if n == 1 {
		if err := l.cache.Expire(ctx, k, l.window).Err(); err != nil {
			return allowed, fmt.Errorf("Allow: %w", err)
		}
		return allowed, nil
	}
	if allowed {
		return true, nil
	}

	// 第一次 EXPIRE 失敗時 key 會永久存在，這裡補設
	ttl, err := l.cache.TTL(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("Allow: %w", err)
	}
	if ttl < 0 {
		if err := l.cache.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("Allow: %w", err)
		}
	}
	return false, nil
}
