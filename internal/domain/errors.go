package domain

import "errors"

var (
	// ErrScenarioNotFound indicates the scenario content could not be loaded.
	ErrScenarioNotFound = errors.New("scenario not found")
	// ErrMissionNotFound indicates an unknown mission ID.
	ErrMissionNotFound = errors.New("mission not found")
	// ErrNoRounds is returned when a scenario is configured without rounds.
	ErrNoRounds = errors.New("scenario has no rounds configured")
	// ErrChoiceOutOfRange indicates a choice index outside the current round.
	ErrChoiceOutOfRange = errors.New("choice index out of range")
	// ErrRoundNotActive is returned when selecting or advancing out of turn.
	ErrRoundNotActive = errors.New("round is not awaiting that action")
	// ErrRunFinished is returned for input after a run reached its result.
	ErrRunFinished = errors.New("run already finished")
	// ErrProfileNotFound indicates the user has no persisted profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrTeamNotFound indicates the team aggregate row is missing.
	ErrTeamNotFound = errors.New("team not found")
)
