package content

import "testing"

func TestScenarioPackWellFormed(t *testing.T) {
	scenarios := Scenarios()
	if len(scenarios) != 8 {
		t.Fatalf("expected 8 scenarios, got %d", len(scenarios))
	}
	for id, scenario := range scenarios {
		if scenario.ID != id {
			t.Fatalf("scenario %q: key/ID mismatch (%q)", id, scenario.ID)
		}
		if scenario.Title == "" {
			t.Fatalf("scenario %q: missing title", id)
		}
		if len(scenario.Rounds) == 0 {
			t.Fatalf("scenario %q: no rounds", id)
		}
		if scenario.Policy.PointsPerCorrect <= 0 || scenario.Policy.PerfectBonus <= 0 {
			t.Fatalf("scenario %q: reward policy not configured: %+v", id, scenario.Policy)
		}
		if scenario.Policy.Badge == "" {
			t.Fatalf("scenario %q: no badge", id)
		}
		for i, round := range scenario.Rounds {
			if round.Prompt == "" {
				t.Fatalf("scenario %q round %d: missing prompt", id, i)
			}
			if len(round.Choices) < 2 {
				t.Fatalf("scenario %q round %d: needs at least 2 choices", id, i)
			}
			correct := 0
			for _, choice := range round.Choices {
				if choice.Text == "" {
					t.Fatalf("scenario %q round %d: empty choice text", id, i)
				}
				if choice.Correct {
					correct++
				}
			}
			if correct != 1 {
				t.Fatalf("scenario %q round %d: expected exactly one correct choice, got %d", id, i, correct)
			}
		}
	}
}

func TestMissionPackWellFormed(t *testing.T) {
	missions := Missions()
	if len(missions) == 0 {
		t.Fatalf("mission pack is empty")
	}
	for id, mission := range missions {
		if mission.ID != id {
			t.Fatalf("mission %q: key/ID mismatch (%q)", id, mission.ID)
		}
		if mission.Type == "" {
			t.Fatalf("mission %q: missing type", id)
		}
		if len(mission.Choices) == 0 {
			t.Fatalf("mission %q: no choices", id)
		}
		positive := 0
		for _, choice := range mission.Choices {
			if choice.Text == "" || choice.Feedback == "" {
				t.Fatalf("mission %q: choice needs text and feedback", id)
			}
			if choice.DeltaXP > 0 {
				positive++
			}
		}
		if positive == 0 {
			t.Fatalf("mission %q: no winnable choice", id)
		}
	}
}
