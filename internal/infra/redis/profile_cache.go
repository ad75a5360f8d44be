package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"scamslayer-service/internal/app"
	"scamslayer-service/internal/domain"
)

// ProfileCache is a read-through cache in front of a ProfileRepository.
// Reads serve hot profile snapshots from Redis; writes go through to the
// backing store and refresh the cached snapshot so readers observe the
// post-merge state.
type ProfileCache struct {
	client *redis.Client
	inner  app.ProfileRepository
	ttl    time.Duration
}

func NewProfileCache(client *redis.Client, inner app.ProfileRepository, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, inner: inner, ttl: ttl}
}

func (c *ProfileCache) Get(ctx context.Context, uid string) (domain.Profile, error) {
	key := c.key(uid)
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
		var profile domain.Profile
		if err := json.Unmarshal(raw, &profile); err == nil {
			return profile, nil
		}
	}

	profile, err := c.inner.Get(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	c.store(ctx, profile)
	return profile, nil
}

func (c *ProfileCache) Apply(ctx context.Context, uid, name string, ev domain.RewardEvent) (domain.Profile, error) {
	profile, err := c.inner.Apply(ctx, uid, name, ev)
	if err != nil {
		// stale snapshot must not outlive a failed merge
		_ = c.client.Del(ctx, c.key(uid)).Err()
		return domain.Profile{}, err
	}
	c.store(ctx, profile)
	return profile, nil
}

// best-effort; a cache write failure only costs a later re-read
func (c *ProfileCache) store(ctx context.Context, profile domain.Profile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(profile.UID), raw, c.ttl).Err()
}

func (c *ProfileCache) key(uid string) string {
	return "profile:" + uid
}
