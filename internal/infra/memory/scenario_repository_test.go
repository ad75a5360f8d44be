package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"scamslayer-service/internal/domain"
)

type countingLoader struct {
	inner ScenarioLoader
	loads int
}

func (c *countingLoader) LoadScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	c.loads++
	return c.inner.LoadScenario(ctx, scenarioID)
}

func (c *countingLoader) LoadScenarios(ctx context.Context) ([]domain.Scenario, error) {
	return c.inner.LoadScenarios(ctx)
}

func fixtureScenarios() map[string]domain.Scenario {
	return map[string]domain.Scenario{
		"job-watch": {
			ID:    "job-watch",
			Title: "Job Watch",
			Rounds: []domain.Round{{
				Prompt:  "A recruiter asks for a deposit",
				Choices: []domain.Choice{{Text: "Pay"}, {Text: "Walk away", Correct: true}},
			}},
		},
		"call-shield": {
			ID:    "call-shield",
			Title: "Call Shield",
			Rounds: []domain.Round{{
				Prompt:  "Caller claims to be your bank",
				Choices: []domain.Choice{{Text: "Share OTP"}, {Text: "Hang up", Correct: true}},
			}},
		},
	}
}

func TestScenarioCacheHit(t *testing.T) {
	loader := &countingLoader{inner: NewStaticScenarioLoader(fixtureScenarios())}
	repo := NewScenarioRepository(loader, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		scenario, err := repo.GetScenario(ctx, "job-watch")
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if scenario.Title != "Job Watch" {
			t.Fatalf("unexpected scenario: %+v", scenario)
		}
	}
	if loader.loads != 1 {
		t.Fatalf("expected a single backing load, got %d", loader.loads)
	}
}

func TestScenarioCacheExpiry(t *testing.T) {
	loader := &countingLoader{inner: NewStaticScenarioLoader(fixtureScenarios())}
	repo := NewScenarioRepository(loader, time.Minute)
	current := time.Unix(1700000000, 0)
	repo.clock = func() time.Time { return current }
	ctx := context.Background()

	if _, err := repo.GetScenario(ctx, "job-watch"); err != nil {
		t.Fatalf("first get: %v", err)
	}
	// jitter adds at most 10%, so 2x TTL is always past expiry
	current = current.Add(2 * time.Minute)
	if _, err := repo.GetScenario(ctx, "job-watch"); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if loader.loads != 2 {
		t.Fatalf("expected reload after expiry, got %d loads", loader.loads)
	}
}

func TestScenarioNotFoundPassesThrough(t *testing.T) {
	repo := NewScenarioRepository(NewStaticScenarioLoader(fixtureScenarios()), time.Minute)
	if _, err := repo.GetScenario(context.Background(), "nope"); !errors.Is(err, domain.ErrScenarioNotFound) {
		t.Fatalf("expected ErrScenarioNotFound, got %v", err)
	}
}

func TestListScenariosSorted(t *testing.T) {
	repo := NewScenarioRepository(NewStaticScenarioLoader(fixtureScenarios()), time.Minute)
	scenarios, err := repo.ListScenarios(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scenarios) != 2 || scenarios[0].ID != "call-shield" || scenarios[1].ID != "job-watch" {
		t.Fatalf("expected sorted ids, got %+v", scenarios)
	}
}

func TestMissionRepository(t *testing.T) {
	repo := NewMissionRepository(map[string]domain.Mission{
		"otp-panic": {ID: "otp-panic", Title: "OTP Panic", Choices: []domain.MissionChoice{{Text: "Never share", DeltaXP: 25}}},
	})
	ctx := context.Background()

	mission, err := repo.GetMission(ctx, "otp-panic")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if mission.Title != "OTP Panic" {
		t.Fatalf("unexpected mission: %+v", mission)
	}
	if _, err := repo.GetMission(ctx, "nope"); !errors.Is(err, domain.ErrMissionNotFound) {
		t.Fatalf("expected ErrMissionNotFound, got %v", err)
	}
	missions, err := repo.ListMissions(ctx)
	if err != nil || len(missions) != 1 {
		t.Fatalf("list: %v %d", err, len(missions))
	}
}
