package cache

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Integration tests — skipped unless REDIS_URL is set.
func TestItemCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ic := NewItemCache(rc)
	ctx := context.Background()

	t.Run("Set_Get_RoundTrip", func(t *testing.T) {
		want := &CachedItem{ID: uuid.New(), Name: "cached", Description: "d"}
		if err := ic.Set(ctx, want); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		defer ic.Delete(ctx, want.ID) //nolint:errcheck

		got, err := ic.Get(ctx, want.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != want.ID || got.Name != want.Name || got.Description != want.Description {
			t.Errorf("Get = %+v, want %+v", got, want)
		}
	})

	t.Run("Get_Missing_ReturnsNil", func(t *testing.T) {
		_, err := ic.Get(ctx, uuid.New())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Delete_RemovesEntry", func(t *testing.T) {
		item := &CachedItem{ID: uuid.New(), Name: "gone", Description: "d"}
		if err := ic.Set(ctx, item); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := ic.Delete(ctx, item.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := ic.Get(ctx, item.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("Get_CorruptEntry_Evicts", func(t *testing.T) {
		id := uuid.New()
		key := ic.key(id)
		if err := rc.Client().HSet(ctx, key, "id", "not-a-uuid", "name", "x").Err(); err != nil {
			t.Fatalf("HSet failed: %v", err)
		}

		if _, err := ic.Get(ctx, id); err == nil {
			t.Fatal("expected error for corrupt entry, got nil")
		}
		// The corrupt hash must be gone so the next read misses cleanly.
		if _, err := ic.Get(ctx, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after eviction, got %v", err)
		}
	})
}
