package memory

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"scamslayer-service/internal/domain"
)

// ScenarioLoader fetches scenario content from a backing store (static pack,
// document DB).
type ScenarioLoader interface {
	LoadScenario(ctx context.Context, scenarioID string) (domain.Scenario, error)
	LoadScenarios(ctx context.Context) ([]domain.Scenario, error)
}

// ScenarioRepository caches scenarios with TTL to avoid repeated store hits.
type ScenarioRepository struct {
	loader ScenarioLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedScenario
}

type cachedScenario struct {
	scenario  domain.Scenario
	expiresAt time.Time
}

func NewScenarioRepository(loader ScenarioLoader, ttl time.Duration) *ScenarioRepository {
	return &ScenarioRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedScenario),
	}
}

func (r *ScenarioRepository) GetScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[scenarioID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.scenario, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(scenarioID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[scenarioID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.scenario, nil
		}
		r.mu.RUnlock()

		scenario, err := r.loader.LoadScenario(ctx, scenarioID)
		if err != nil {
			return domain.Scenario{}, err
		}

		r.mu.Lock()
		r.cache[scenarioID] = cachedScenario{
			scenario:  scenario,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return scenario, nil
	})
	if err != nil {
		return domain.Scenario{}, err
	}
	return result.(domain.Scenario), nil
}

func (r *ScenarioRepository) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	return r.loader.LoadScenarios(ctx)
}

func (r *ScenarioRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticScenarioLoader is a loader backed by an in-memory map (the built-in
// content pack, tests, demos).
type StaticScenarioLoader struct {
	scenarios map[string]domain.Scenario
}

func NewStaticScenarioLoader(scenarios map[string]domain.Scenario) *StaticScenarioLoader {
	return &StaticScenarioLoader{scenarios: scenarios}
}

func (l *StaticScenarioLoader) LoadScenario(_ context.Context, scenarioID string) (domain.Scenario, error) {
	if scenario, ok := l.scenarios[scenarioID]; ok {
		return scenario, nil
	}
	return domain.Scenario{}, domain.ErrScenarioNotFound
}

func (l *StaticScenarioLoader) LoadScenarios(_ context.Context) ([]domain.Scenario, error) {
	out := make([]domain.Scenario, 0, len(l.scenarios))
	for _, scenario := range l.scenarios {
		out = append(out, scenario)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MissionRepository serves the static mission pack.
type MissionRepository struct {
	missions map[string]domain.Mission
}

func NewMissionRepository(missions map[string]domain.Mission) *MissionRepository {
	return &MissionRepository{missions: missions}
}

func (r *MissionRepository) GetMission(_ context.Context, missionID string) (domain.Mission, error) {
	if mission, ok := r.missions[missionID]; ok {
		return mission, nil
	}
	return domain.Mission{}, domain.ErrMissionNotFound
}

func (r *MissionRepository) ListMissions(_ context.Context) ([]domain.Mission, error) {
	out := make([]domain.Mission, 0, len(r.missions))
	for _, mission := range r.missions {
		out = append(out, mission)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
