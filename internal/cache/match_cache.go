// Package cache implements the cache-aside store for computed match
// results. The cache is strictly derived state: the record store stays the
// authority and every entry ages out on a short TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/model"
)

// SubjectKind selects which side of a match a cache key is scoped to.
type SubjectKind string

const (
	KindJob    SubjectKind = "job"
	KindTalent SubjectKind = "talent"
)

// Outcome is the result of a cache lookup. Unavailable means the cache store
// could not be reached; callers treat it exactly like Miss (fail-open).
type Outcome int

const (
	Hit Outcome = iota
	Miss
	Unavailable
)

// MatchCache stores ordered MatchResult slices in Redis under
// matches:job:{id} / matches:talent:{id}.
type MatchCache struct {
	redis         *redis.Client
	ttl           time.Duration
	lookupTimeout time.Duration
	logger        *zap.Logger
}

func NewMatchCache(redisClient *redis.Client, ttl, lookupTimeout time.Duration, logger *zap.Logger) *MatchCache {
	return &MatchCache{
		redis:         redisClient,
		ttl:           ttl,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Key builds the canonical cache key for a subject.
func Key(kind SubjectKind, id string) string {
	return fmt.Sprintf("matches:%s:%s", kind, id)
}

// Lookup fetches a cached result list. A store error never propagates: the
// caller sees Unavailable and recomputes.
func (c *MatchCache) Lookup(ctx context.Context, key string) ([]model.MatchResult, Outcome) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, Miss
	}
	if err != nil {
		c.logger.Warn("match cache unreachable, treating as miss",
			zap.String("key", key), zap.Error(err))
		return nil, Unavailable
	}

	var results []model.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		// Corrupt entry: drop it and recompute.
		c.logger.Warn("discarding corrupt match cache entry",
			zap.String("key", key), zap.Error(err))
		c.redis.Del(ctx, key)
		return nil, Miss
	}

	return results, Hit
}

// Store writes a computed result list with the configured TTL. Failures are
// non-fatal: the freshly computed value has already been returned to the
// caller, only the caching optimization is lost.
func (c *MatchCache) Store(ctx context.Context, key string, results []model.MatchResult) {
	data, err := json.Marshal(results)
	if err != nil {
		c.logger.Error("failed to marshal match results", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("match cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops cached results touching the given subject. The canonical
// key is deleted, and because the subject can appear inside any cached list
// of the opposite kind, those keys are swept as well. The whole pass runs
// under the same short timeout as Lookup and Store so a stalled cache store
// cannot block the mutating request that triggered it.
func (c *MatchCache) Invalidate(ctx context.Context, kind SubjectKind, id string) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	if err := c.redis.Del(ctx, Key(kind, id)).Err(); err != nil && err != redis.Nil {
		c.logger.Warn("match cache invalidation failed",
			zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
	}

	opposite := KindJob
	if kind == KindJob {
		opposite = KindTalent
	}
	c.sweep(ctx, fmt.Sprintf("matches:%s:*", opposite))
}

func (c *MatchCache) sweep(ctx context.Context, pattern string) {
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("match cache sweep delete failed",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("match cache sweep failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
