package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"scamslayer-service/internal/domain"
)

// ScenarioRepository loads scenario content (from cache/backing store).
type ScenarioRepository interface {
	GetScenario(ctx context.Context, scenarioID string) (domain.Scenario, error)
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
}

// Summary is what a finished run hands back to the player: the local result,
// the evaluated reward, and a recoverable save error when persistence failed.
type Summary struct {
	Result    domain.Result `json:"result"`
	Reward    domain.Reward `json:"reward"`
	SaveError string        `json:"saveError,omitempty"`
}

// saveFailedMessage mirrors the runner's recoverable persistence failure.
const saveFailedMessage = "Could not save rewards. Try again once you are online."

// GameService contains the scenario run use cases.
type GameService struct {
	scenarios ScenarioRepository
	ledger    *Ledger
}

func NewGameService(scenarios ScenarioRepository, ledger *Ledger) *GameService {
	return &GameService{scenarios: scenarios, ledger: ledger}
}

// StartRun loads the scenario and opens a fresh run over its rounds.
func (s *GameService) StartRun(ctx context.Context, scenarioID string) (*Run, error) {
	scenario, err := s.scenarios.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", scenarioID, err)
	}
	return NewRun(scenario)
}

// Scenarios lists the available scenario content.
func (s *GameService) Scenarios(ctx context.Context) ([]domain.Scenario, error) {
	return s.scenarios.ListScenarios(ctx)
}

// FinishRun settles a finished run: evaluates the scenario's reward policy
// and writes the reward through the ledger. Anonymous players get the
// reward back locked with nothing persisted. A ledger failure keeps the
// locally computed result and reward intact and only withholds the saved
// confirmation. Callers invoke this exactly once, on the advance that
// finished the run.
func (s *GameService) FinishRun(ctx context.Context, run *Run, ident domain.Identity) (Summary, error) {
	result, ok := run.Result()
	if !ok {
		return Summary{}, domain.ErrRoundNotActive
	}

	scenario := run.Scenario()
	reward := scenario.Policy.Evaluate(result)
	summary := Summary{Result: result, Reward: reward}

	if ident.Anonymous() {
		summary.Reward.Locked = true
		if scenario.Policy.LockedMessage != "" {
			summary.Reward.Message = scenario.Policy.LockedMessage
		}
		return summary, nil
	}

	ev := domain.RewardEvent{
		Delta: reward.XP,
		Badge: reward.Badge,
		Game: &domain.GameResult{
			ID:      scenario.ID,
			Name:    scenario.Title,
			Score:   result.Score,
			Streak:  result.MaxStreak,
			Correct: result.Correct,
			Total:   result.Total,
			Perfect: result.Perfect,
			XP:      reward.XP,
			History: result.History,
		},
	}
	if _, err := s.ledger.Award(ctx, ident, ev); err != nil {
		log.Error().Err(err).Str("scenario", scenario.ID).Str("uid", ident.UID).
			Msg("reward settlement failed")
		summary.SaveError = saveFailedMessage
	}
	return summary, nil
}
