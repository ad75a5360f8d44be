package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"scamslayer-service/internal/domain"
	"scamslayer-service/internal/infra/memory"
)

// ScenarioRepository caches full scenario documents in Redis (JSON value per
// scenario) and falls back to a loader on cache miss. Unlike the profile
// ledger, scenario content is immutable per deploy, so a plain TTL cache is
// enough.
type ScenarioRepository struct {
	client *redis.Client
	loader memory.ScenarioLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewScenarioRepository(client *redis.Client, loader memory.ScenarioLoader, ttl time.Duration) *ScenarioRepository {
	return &ScenarioRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ScenarioRepository) GetScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	key := r.key(scenarioID)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
		var scenario domain.Scenario
		if err := json.Unmarshal(raw, &scenario); err == nil {
			return scenario, nil
		}
		// corrupt cache entry falls through to the loader
	}

	result, err, _ := r.sf.Do(scenarioID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
			var scenario domain.Scenario
			if err := json.Unmarshal(raw, &scenario); err == nil {
				return scenario, nil
			}
		}

		scenario, err := r.loader.LoadScenario(ctx, scenarioID)
		if err != nil {
			return domain.Scenario{}, err
		}

		if raw, err := json.Marshal(scenario); err == nil {
			_ = r.client.Set(ctx, key, raw, r.ttlWithJitter()).Err()
		}
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

func (r *ScenarioRepository) key(scenarioID string) string {
	return "scenario:" + scenarioID
}

func (r *ScenarioRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
