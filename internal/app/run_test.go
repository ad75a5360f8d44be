package app_test

import (
	"errors"
	"testing"

	"scamslayer-service/internal/app"
	"scamslayer-service/internal/domain"
)

func threeRoundScenario() domain.Scenario {
	round := func(id string) domain.Round {
		return domain.Round{
			ID:     id,
			Prompt: "Spot the scam",
			Choices: []domain.Choice{
				{Text: "Risky move", Feedback: "That gifts scammers an opening."},
				{Text: "Safe move", Correct: true, Feedback: "Flawless defense."},
			},
		}
	}
	return domain.Scenario{
		ID:         "test-game",
		Title:      "Test Game",
		BasePoints: 120,
		ComboBonus: 40,
		Rounds:     []domain.Round{round("r1"), round("r2"), round("r3")},
		Policy:     domain.RewardPolicy{PointsPerCorrect: 25, PerfectBonus: 35, Badge: "Test Badge"},
	}
}

func TestComboScoring(t *testing.T) {
	run, err := app.NewRun(threeRoundScenario())
	if err != nil {
		t.Fatalf("new run: %v", err)
	}

	wantGained := []int{120, 160, 200}
	for i, want := range wantGained {
		outcome, err := run.Select(1)
		if err != nil {
			t.Fatalf("select round %d: %v", i, err)
		}
		if !outcome.Correct || outcome.Gained != want {
			t.Fatalf("round %d: expected correct with %d points, got correct=%v gained=%d", i, want, outcome.Correct, outcome.Gained)
		}
		if _, err := run.Advance(); err != nil {
			t.Fatalf("advance round %d: %v", i, err)
		}
	}

	result, ok := run.Result()
	if !ok {
		t.Fatalf("expected finished result")
	}
	if result.Score != 480 {
		t.Fatalf("expected total score 480, got %d", result.Score)
	}
	if result.MaxStreak != 3 {
		t.Fatalf("expected max streak 3, got %d", result.MaxStreak)
	}
	if !result.Perfect || result.Correct != 3 || result.Total != 3 {
		t.Fatalf("expected perfect 3/3, got %+v", result)
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	scenario := threeRoundScenario()
	scenario.Rounds = append(scenario.Rounds, scenario.Rounds[0])
	run, _ := app.NewRun(scenario)

	answers := []struct {
		choice int
		gained int
	}{
		{1, 120}, // streak 0 -> base
		{1, 160}, // streak 1 -> base + 40
		{0, 0},   // wrong, streak resets
		{1, 120}, // streak back to base
	}
	for i, step := range answers {
		outcome, err := run.Select(step.choice)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if outcome.Gained != step.gained {
			t.Fatalf("step %d: expected %d points, got %d", i, step.gained, outcome.Gained)
		}
		if _, err := run.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	result, _ := run.Result()
	if result.Score != 400 || result.MaxStreak != 2 || result.Perfect {
		t.Fatalf("expected score 400, max streak 2, imperfect; got %+v", result)
	}
}

func TestIdempotentAnswerLock(t *testing.T) {
	run, _ := app.NewRun(threeRoundScenario())

	first, err := run.Select(1)
	if err != nil {
		t.Fatalf("first select: %v", err)
	}
	// Rapid repeated clicks must not double-count.
	for i := 0; i < 3; i++ {
		if _, err := run.Select(0); !errors.Is(err, domain.ErrRoundNotActive) {
			t.Fatalf("expected re-select rejected, got %v", err)
		}
	}
	if run.Score() != first.Score || run.Streak() != first.Streak {
		t.Fatalf("state changed after repeated selects: score=%d streak=%d", run.Score(), run.Streak())
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	run, _ := app.NewRun(threeRoundScenario())
	if _, err := run.Advance(); !errors.Is(err, domain.ErrRoundNotActive) {
		t.Fatalf("expected advance before answering rejected, got %v", err)
	}
}

func TestInputAfterFinishRejected(t *testing.T) {
	run, _ := app.NewRun(threeRoundScenario())
	for i := 0; i < 3; i++ {
		if _, err := run.Select(1); err != nil {
			t.Fatalf("select: %v", err)
		}
		if _, err := run.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if _, err := run.Select(1); !errors.Is(err, domain.ErrRunFinished) {
		t.Fatalf("expected select after finish rejected, got %v", err)
	}
	if _, err := run.Advance(); !errors.Is(err, domain.ErrRunFinished) {
		t.Fatalf("expected advance after finish rejected, got %v", err)
	}
}

func TestChoicePointsOverride(t *testing.T) {
	scenario := threeRoundScenario()
	scenario.Rounds = scenario.Rounds[:1]
	scenario.Rounds[0].Choices[1].Points = 500
	run, _ := app.NewRun(scenario)

	outcome, err := run.Select(1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if outcome.Gained != 500 {
		t.Fatalf("expected configured 500 points, got %d", outcome.Gained)
	}
}

func TestChoiceOutOfRange(t *testing.T) {
	run, _ := app.NewRun(threeRoundScenario())
	if _, err := run.Select(9); !errors.Is(err, domain.ErrChoiceOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestEmptyRoundsNeverProduceResult(t *testing.T) {
	_, err := app.NewRun(domain.Scenario{ID: "empty", Title: "Empty"})
	if !errors.Is(err, domain.ErrNoRounds) {
		t.Fatalf("expected ErrNoRounds, got %v", err)
	}
}

func TestResetRestartsFromFirstRound(t *testing.T) {
	run, _ := app.NewRun(threeRoundScenario())
	for i := 0; i < 3; i++ {
		_, _ = run.Select(1)
		_, _ = run.Advance()
	}
	if _, ok := run.Result(); !ok {
		t.Fatalf("expected finished run")
	}

	run.Reset()
	if _, ok := run.Result(); ok {
		t.Fatalf("expected result cleared after reset")
	}
	if run.RoundIndex() != 0 || run.Score() != 0 || run.Streak() != 0 {
		t.Fatalf("expected clean state after reset")
	}
	outcome, err := run.Select(1)
	if err != nil {
		t.Fatalf("select after reset: %v", err)
	}
	if outcome.Gained != 120 {
		t.Fatalf("expected base points after reset, got %d", outcome.Gained)
	}
}
