package memory

import (
	"context"
	"sync"
	"time"

	"scamslayer-service/internal/domain"
)

// ProfileStore is an in-memory implementation of app.ProfileRepository.
// The merge runs under the store mutex, so best-score comparisons are
// atomic against the stored record.
type ProfileStore struct {
	mu       sync.RWMutex
	now      func() time.Time
	profiles map[string]domain.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		now:      time.Now,
		profiles: make(map[string]domain.Profile),
	}
}

// NewProfileStoreWithClock is test-only for deterministic timestamps.
func NewProfileStoreWithClock(now func() time.Time) *ProfileStore {
	store := NewProfileStore()
	store.now = now
	return store
}

func (s *ProfileStore) Get(_ context.Context, uid string) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[uid]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return cloneProfile(profile), nil
}

func (s *ProfileStore) Apply(_ context.Context, uid, name string, ev domain.RewardEvent) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	profile, ok := s.profiles[uid]
	if !ok {
		profile = domain.NewProfile(uid, name, now)
	}
	profile.ApplyReward(ev, now)
	s.profiles[uid] = profile
	return cloneProfile(profile), nil
}

// Seed installs a profile directly, bypassing the reward path (tests, dev
// fixtures such as team membership).
func (s *ProfileStore) Seed(profile domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UID] = profile
}

func cloneProfile(p domain.Profile) domain.Profile {
	out := p
	out.Badges = append([]string(nil), p.Badges...)
	out.MissionsCompleted = append([]string(nil), p.MissionsCompleted...)
	if p.GameStats != nil {
		out.GameStats = make(map[string]domain.GameStats, len(p.GameStats))
		for k, v := range p.GameStats {
			v.LastHistory = append([]domain.HistoryEntry(nil), v.LastHistory...)
			out.GameStats[k] = v
		}
	}
	if p.MissionStats != nil {
		out.MissionStats = make(map[string]domain.MissionStats, len(p.MissionStats))
		for k, v := range p.MissionStats {
			out.MissionStats[k] = v
		}
	}
	return out
}
