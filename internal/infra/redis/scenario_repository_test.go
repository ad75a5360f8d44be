package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"scamslayer-service/internal/domain"
	"scamslayer-service/internal/infra/memory"
)

type countingLoader struct {
	inner memory.ScenarioLoader
	loads int
}

func (c *countingLoader) LoadScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	c.loads++
	return c.inner.LoadScenario(ctx, scenarioID)
}

func (c *countingLoader) LoadScenarios(ctx context.Context) ([]domain.Scenario, error) {
	return c.inner.LoadScenarios(ctx)
}

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func scenarioFixture() map[string]domain.Scenario {
	return map[string]domain.Scenario{
		"job-watch": {
			ID:    "job-watch",
			Title: "Job Watch",
			Rounds: []domain.Round{{
				Prompt:  "A recruiter asks for a deposit",
				Choices: []domain.Choice{{Text: "Pay"}, {Text: "Walk away", Correct: true}},
			}},
		},
	}
}

func TestScenarioCachedInRedis(t *testing.T) {
	mr, client := newTestClient(t)
	loader := &countingLoader{inner: memory.NewStaticScenarioLoader(scenarioFixture())}
	repo := NewScenarioRepository(client, loader, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		scenario, err := repo.GetScenario(ctx, "job-watch")
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if scenario.Title != "Job Watch" || len(scenario.Rounds) != 1 {
			t.Fatalf("unexpected scenario: %+v", scenario)
		}
	}
	if loader.loads != 1 {
		t.Fatalf("expected a single backing load, got %d", loader.loads)
	}
	if !mr.Exists("scenario:job-watch") {
		t.Fatalf("expected cached key scenario:job-watch")
	}
}

func TestScenarioCorruptEntryFallsThrough(t *testing.T) {
	mr, client := newTestClient(t)
	if err := mr.Set("scenario:job-watch", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	loader := &countingLoader{inner: memory.NewStaticScenarioLoader(scenarioFixture())}
	repo := NewScenarioRepository(client, loader, time.Minute)

	scenario, err := repo.GetScenario(context.Background(), "job-watch")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if scenario.Title != "Job Watch" {
		t.Fatalf("unexpected scenario: %+v", scenario)
	}
	if loader.loads != 1 {
		t.Fatalf("corrupt cache entry must hit the loader, loads=%d", loader.loads)
	}
}

func TestScenarioNotFoundNotCached(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewScenarioRepository(client, memory.NewStaticScenarioLoader(scenarioFixture()), time.Minute)

	if _, err := repo.GetScenario(context.Background(), "nope"); !errors.Is(err, domain.ErrScenarioNotFound) {
		t.Fatalf("expected ErrScenarioNotFound, got %v", err)
	}
	if mr.Exists("scenario:nope") {
		t.Fatalf("missing scenarios must not be cached")
	}
}
