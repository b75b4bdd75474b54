// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPageCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := pc.Get(ctx, ProjectKey("missing"))
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	// Set then hit.
	html := []byte("<html><body>Project Detail</body></html>")
	pc.Set(ctx, ProjectKey("missing"), html)

	data, ok = pc.Get(ctx, ProjectKey("missing"))
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(html) {
		t.Errorf("data mismatch: got %q, want %q", data, html)
	}
}

func TestPageCacheInvalidatePage(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()

	pc.Set(ctx, "invalidate-me", []byte("cached"))

	if _, ok := pc.Get(ctx, "invalidate-me"); !ok {
		t.Fatal("expected cache hit before invalidation")
	}

	pc.InvalidatePage(ctx, "invalidate-me")

	if _, ok := pc.Get(ctx, "invalidate-me"); ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()

	pc.Set(ctx, HomepageKey(), []byte("home"))
	pc.Set(ctx, ProjectKey("alpha"), []byte("a"))
	pc.Set(ctx, ProjectListKey("backend", "", 1), []byte("grid"))

	pc.InvalidateAll(ctx)

	for _, key := range []string{HomepageKey(), ProjectKey("alpha"), ProjectListKey("backend", "", 1)} {
		if _, ok := pc.Get(ctx, key); ok {
			t.Errorf("expected miss for %q after InvalidateAll", key)
		}
	}
}

func TestProjectListKey(t *testing.T) {
	a := ProjectListKey("backend", "Go", 2)
	b := ProjectListKey("backend", "Go", 3)
	if a == b {
		t.Error("different pages must cache under different keys")
	}
	if ProjectListKey("", "", 1) == ProjectListKey("backend", "", 1) {
		t.Error("different filters must cache under different keys")
	}
}

func TestNewPageCacheDefaultTTL(t *testing.T) {
	client := testValkeyClient(t)

	// TTL = 0 should use default.
	pc := NewPageCache(client, 0)
	if pc.ttl != DefaultPageTTL {
		t.Errorf("expected DefaultPageTTL (%v), got %v", DefaultPageTTL, pc.ttl)
	}
}
