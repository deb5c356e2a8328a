package cache

import (
	"context"
	"testing"
	"time"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

func newTestEntry(digest string, ttl time.Duration) *core.CacheEntry {
	return &core.CacheEntry{
		ContentDigest:   digest,
		IsNonCompliant:  true,
		Category:        "Secrecy",
		Reason:          "hush",
		EvidenceLineIDs: []int{1, 3},
		LastSeen:        time.Now(),
		ExpiresAt:       time.Now().Add(ttl),
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	ctx := context.Background()
	if err := c.Set(ctx, newTestEntry("abc", time.Hour)); err != nil {
		t.Fatalf("set: %v", err)
	}

	entry, err := c.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry.Category != "Secrecy" || !entry.IsNonCompliant {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if len(entry.EvidenceLineIDs) != 2 {
		t.Errorf("evidence ids lost: %v", entry.EvidenceLineIDs)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	if _, err := c.Get(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCache_Expired(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	ctx := context.Background()
	if err := c.Set(ctx, newTestEntry("old", -time.Minute)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := c.Get(ctx, "old"); err != ErrExpired {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	ctx := context.Background()
	if err := c.Set(ctx, newTestEntry("gone", time.Hour)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.Get(ctx, "gone"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryCache_CleanupRemovesExpired(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	ctx := context.Background()
	if err := c.Set(ctx, newTestEntry("live", time.Hour)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Set(ctx, newTestEntry("dead", -time.Minute)); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := c.Cleanup(ctx); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	if _, err := c.Get(ctx, "live"); err != nil {
		t.Errorf("live entry should survive cleanup: %v", err)
	}
	if _, err := c.Get(ctx, "dead"); err != ErrNotFound {
		t.Errorf("expected dead entry removed, got %v", err)
	}
}
