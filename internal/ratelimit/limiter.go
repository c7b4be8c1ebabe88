// Package ratelimit implements the per-talent fixed-window counter that
// guards outbound notifications.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NotifyLimiter caps how many notifications a single talent receives within
// a fixed window. Counters live in Redis under
// rate_limit:notify_talent:{talentId}; the first increment of a window sets
// the expiry.
type NotifyLimiter struct {
	redis  *redis.Client
	max    int64
	window time.Duration
	logger *zap.Logger
}

func NewNotifyLimiter(redisClient *redis.Client, max int, window time.Duration, logger *zap.Logger) *NotifyLimiter {
	return &NotifyLimiter{
		redis:  redisClient,
		max:    int64(max),
		window: window,
		logger: logger,
	}
}

func counterKey(talentID string) string {
	return fmt.Sprintf("rate_limit:notify_talent:%s", talentID)
}

// TryAcquire reserves one notification slot for the talent. An over-limit
// increment is compensated with a decrement so the window's count only
// reflects accepted notifications. Redis being unreachable fails open.
func (l *NotifyLimiter) TryAcquire(ctx context.Context, talentID string) bool {
	key := counterKey(talentID)

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("rate limit counter unreachable, allowing notification",
			zap.String("talentId", talentID), zap.Error(err))
		return true
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("failed to set rate limit window expiry",
				zap.String("talentId", talentID), zap.Error(err))
		}
	}

	if count > l.max {
		if err := l.redis.Decr(ctx, key).Err(); err != nil {
			l.logger.Warn("failed to roll back over-limit increment",
				zap.String("talentId", talentID), zap.Error(err))
		}
		return false
	}

	return true
}
