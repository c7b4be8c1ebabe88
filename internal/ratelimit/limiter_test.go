package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Tests run against a local Redis on DB 15 so they never touch real data.
func testRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestTryAcquireBoundary(t *testing.T) {
	client := testRedis(t)
	ctx := context.Background()
	limiter := NewNotifyLimiter(client, 10, time.Hour, zap.NewNop())

	talentID := fmt.Sprintf("talent-%d", time.Now().UnixNano())
	key := counterKey(talentID)
	t.Cleanup(func() { client.Del(ctx, key) })

	// Simulate 9 prior accepted notifications in the window.
	for i := 0; i < 9; i++ {
		if !limiter.TryAcquire(ctx, talentID) {
			t.Fatalf("acquire %d rejected below the limit", i+1)
		}
	}

	if !limiter.TryAcquire(ctx, talentID) {
		t.Error("10th acquire rejected, want allowed")
	}
	if limiter.TryAcquire(ctx, talentID) {
		t.Error("11th acquire allowed, want rejected")
	}

	// The rejected attempt must not leak into the window's count.
	count, err := client.Get(ctx, key).Int64()
	if err != nil {
		t.Fatal(err)
	}
	if count != 10 {
		t.Errorf("counter after rejection = %d, want 10", count)
	}
}

func TestTryAcquireSetsWindowExpiry(t *testing.T) {
	client := testRedis(t)
	ctx := context.Background()
	limiter := NewNotifyLimiter(client, 10, time.Hour, zap.NewNop())

	talentID := fmt.Sprintf("talent-%d", time.Now().UnixNano())
	key := counterKey(talentID)
	t.Cleanup(func() { client.Del(ctx, key) })

	if !limiter.TryAcquire(ctx, talentID) {
		t.Fatal("first acquire rejected")
	}

	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatal(err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("window TTL = %v, want (0, 1h]", ttl)
	}

	// Subsequent acquires must not reset the window.
	if !limiter.TryAcquire(ctx, talentID) {
		t.Fatal("second acquire rejected")
	}
	ttl2, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatal(err)
	}
	if ttl2 > ttl {
		t.Errorf("TTL grew from %v to %v after second acquire", ttl, ttl2)
	}
}

func TestTryAcquireFailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:1"}) // nothing listens here
	defer client.Close()

	limiter := NewNotifyLimiter(client, 10, time.Hour, zap.NewNop())
	if !limiter.TryAcquire(context.Background(), "talent-x") {
		t.Error("unreachable counter store must fail open")
	}
}
