package app

import (
	"time"

	"github.com/google/uuid"

	"scamslayer-service/internal/domain"
)

// runState tracks where a run sits between player inputs.
type runState int

const (
	statePlaying runState = iota // current round awaiting a selection
	stateAnswered                // selection locked, awaiting advance
	stateFinished                // result frozen
)

// Outcome is the immediate feedback after a selection: scoring is applied the
// instant the choice locks in, never deferred to the advance.
type Outcome struct {
	Correct      bool   `json:"correct"`
	Gained       int    `json:"gained"`
	Feedback     string `json:"feedback,omitempty"`
	CorrectIndex int    `json:"correctIndex"`
	Score        int    `json:"score"`
	Streak       int    `json:"streak"`
	MaxStreak    int    `json:"maxStreak"`
	CorrectCount int    `json:"correctCount"`
}

// Run drives a player through one scenario's round sequence and accumulates
// score, streak and history until the terminal result. A Run is owned by a
// single connection and is not safe for concurrent use.
type Run struct {
	ID       string
	scenario domain.Scenario
	base     int
	combo    int

	state        runState
	roundIndex   int
	score        int
	streak       int
	maxStreak    int
	correctCount int
	history      []domain.HistoryEntry
	result       *domain.Result
	startedAt    time.Time
}

// NewRun starts a run over the scenario's rounds. A scenario with no rounds
// never produces a result and is rejected up front.
func NewRun(scenario domain.Scenario) (*Run, error) {
	if len(scenario.Rounds) == 0 {
		return nil, domain.ErrNoRounds
	}
	base := scenario.BasePoints
	if base == 0 {
		base = domain.DefaultBasePoints
	}
	combo := scenario.ComboBonus
	if combo == 0 {
		combo = domain.DefaultComboBonus
	}
	return &Run{
		ID:        uuid.NewString(),
		scenario:  scenario,
		base:      base,
		combo:     combo,
		startedAt: time.Now(),
	}, nil
}

// Scenario returns the content this run plays through.
func (r *Run) Scenario() domain.Scenario { return r.scenario }

// RoundIndex returns the zero-based index of the current round.
func (r *Run) RoundIndex() int { return r.roundIndex }

// TotalRounds returns the length of the round sequence.
func (r *Run) TotalRounds() int { return len(r.scenario.Rounds) }

// Score returns the running score.
func (r *Run) Score() int { return r.score }

// Streak returns the current consecutive-correct count.
func (r *Run) Streak() int { return r.streak }

// CurrentRound returns the round awaiting input. ok is false once the run
// has finished.
func (r *Run) CurrentRound() (domain.Round, bool) {
	if r.state == stateFinished {
		return domain.Round{}, false
	}
	return r.scenario.Rounds[r.roundIndex], true
}

// Select locks in a choice for the current round and applies scoring
// immediately. A second select in the same round, or any select after the
// run finished, is rejected so rapid repeated clicks cannot double-count.
func (r *Run) Select(choiceIndex int) (Outcome, error) {
	if r.state == stateFinished {
		return Outcome{}, domain.ErrRunFinished
	}
	if r.state != statePlaying {
		return Outcome{}, domain.ErrRoundNotActive
	}
	round := r.scenario.Rounds[r.roundIndex]
	if choiceIndex < 0 || choiceIndex >= len(round.Choices) {
		return Outcome{}, domain.ErrChoiceOutOfRange
	}

	choice := round.Choices[choiceIndex]
	gained := 0
	if choice.Correct {
		points := choice.Points
		if points == 0 {
			points = r.base
		}
		// combo bonus scales with the pre-increment streak
		gained = points + r.streak*r.combo
		r.score += gained
		r.streak++
		if r.streak > r.maxStreak {
			r.maxStreak = r.streak
		}
		r.correctCount++
	} else {
		r.streak = 0
	}

	roundID := round.ID
	if roundID == "" {
		roundID = round.Prompt
	}
	r.history = append(r.history, domain.HistoryEntry{
		Round:   roundID,
		Prompt:  round.Prompt,
		Choice:  choice.Text,
		Correct: choice.Correct,
		Gained:  gained,
	})
	r.state = stateAnswered

	return Outcome{
		Correct:      choice.Correct,
		Gained:       gained,
		Feedback:     choice.Feedback,
		CorrectIndex: correctIndex(round),
		Score:        r.score,
		Streak:       r.streak,
		MaxStreak:    r.maxStreak,
		CorrectCount: r.correctCount,
	}, nil
}

// Advance moves past an answered round. On the final round it freezes the
// terminal result exactly once and reports finished=true; the caller settles
// the reward on that single transition.
func (r *Run) Advance() (bool, error) {
	if r.state == stateFinished {
		return false, domain.ErrRunFinished
	}
	if r.state != stateAnswered {
		return false, domain.ErrRoundNotActive
	}

	if r.roundIndex >= len(r.scenario.Rounds)-1 {
		total := len(r.scenario.Rounds)
		r.result = &domain.Result{
			Score:     r.score,
			Correct:   r.correctCount,
			Total:     total,
			MaxStreak: r.maxStreak,
			History:   append([]domain.HistoryEntry(nil), r.history...),
			Perfect:   r.correctCount == total && total > 0,
		}
		r.state = stateFinished
		return true, nil
	}

	r.roundIndex++
	r.state = statePlaying
	return false, nil
}

// Result returns the frozen outcome of a finished run.
func (r *Run) Result() (domain.Result, bool) {
	if r.result == nil {
		return domain.Result{}, false
	}
	return *r.result, true
}

// Reset discards all session state and restarts the run from the first round.
func (r *Run) Reset() {
	r.state = statePlaying
	r.roundIndex = 0
	r.score = 0
	r.streak = 0
	r.maxStreak = 0
	r.correctCount = 0
	r.history = nil
	r.result = nil
	r.startedAt = time.Now()
}

func correctIndex(round domain.Round) int {
	for i, c := range round.Choices {
		if c.Correct {
			return i
		}
	}
	return -1
}
