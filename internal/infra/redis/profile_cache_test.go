package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"scamslayer-service/internal/domain"
	"scamslayer-service/internal/infra/memory"
)

type countingProfiles struct {
	inner *memory.ProfileStore
	gets  int
}

func (c *countingProfiles) Get(ctx context.Context, uid string) (domain.Profile, error) {
	c.gets++
	return c.inner.Get(ctx, uid)
}

func (c *countingProfiles) Apply(ctx context.Context, uid, name string, ev domain.RewardEvent) (domain.Profile, error) {
	return c.inner.Apply(ctx, uid, name, ev)
}

type failingProfiles struct{}

func (failingProfiles) Get(context.Context, string) (domain.Profile, error) {
	return domain.Profile{}, errors.New("store down")
}

func (failingProfiles) Apply(context.Context, string, string, domain.RewardEvent) (domain.Profile, error) {
	return domain.Profile{}, errors.New("store down")
}

func TestProfileReadThrough(t *testing.T) {
	_, client := newTestClient(t)
	counting := &countingProfiles{inner: memory.NewProfileStore()}
	cache := NewProfileCache(client, counting, time.Minute)
	ctx := context.Background()

	if _, err := cache.Apply(ctx, "u1", "Priya", domain.RewardEvent{Delta: 25}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	for i := 0; i < 3; i++ {
		profile, err := cache.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if profile.XP != 25 || profile.Name != "Priya" {
			t.Fatalf("unexpected profile: %+v", profile)
		}
	}
	if counting.gets != 0 {
		t.Fatalf("write-through snapshot must serve reads, backing gets=%d", counting.gets)
	}
}

func TestProfileApplyRefreshesSnapshot(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewProfileCache(client, memory.NewProfileStore(), time.Minute)
	ctx := context.Background()

	if _, err := cache.Apply(ctx, "u1", "Priya", domain.RewardEvent{Delta: 25}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := cache.Apply(ctx, "u1", "Priya", domain.RewardEvent{Delta: 30}); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	profile, err := cache.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if profile.XP != 55 {
		t.Fatalf("cached snapshot must track the merged state, got %d", profile.XP)
	}
	if !mr.Exists("profile:u1") {
		t.Fatalf("expected cached key profile:u1")
	}
}

func TestProfileFailedMergeDropsSnapshot(t *testing.T) {
	mr, client := newTestClient(t)
	if err := mr.Set("profile:u1", `{"uid":"u1","xp":999}`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cache := NewProfileCache(client, failingProfiles{}, time.Minute)

	if _, err := cache.Apply(context.Background(), "u1", "Priya", domain.RewardEvent{Delta: 25}); err == nil {
		t.Fatalf("expected apply to fail")
	}
	if mr.Exists("profile:u1") {
		t.Fatalf("stale snapshot must be dropped after a failed merge")
	}
}

func TestProfileMissPropagatesNotFound(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewProfileCache(client, memory.NewProfileStore(), time.Minute)

	if _, err := cache.Get(context.Background(), "nobody"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
