package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"scamslayer-service/internal/domain"
)

// MissionRepository serves mission content.
type MissionRepository interface {
	GetMission(ctx context.Context, missionID string) (domain.Mission, error)
	ListMissions(ctx context.Context) ([]domain.Mission, error)
}

// MissionService resolves mission attempts and settles their rewards.
type MissionService struct {
	missions MissionRepository
	ledger   *Ledger
}

func NewMissionService(missions MissionRepository, ledger *Ledger) *MissionService {
	return &MissionService{missions: missions, ledger: ledger}
}

// Missions lists the configured mission set.
func (s *MissionService) Missions(ctx context.Context) ([]domain.Mission, error) {
	return s.missions.ListMissions(ctx)
}

// Attempt resolves one mission choice and merges the outcome into the
// player's ledger. A mission already cleared rejects further positive
// awards; penalties still land. Anonymous attempts return the outcome
// locked with nothing persisted. A ledger failure keeps the computed
// outcome intact and only withholds the saved confirmation.
func (s *MissionService) Attempt(ctx context.Context, ident domain.Identity, missionID string, choiceIndex int) (domain.MissionOutcome, error) {
	mission, err := s.missions.GetMission(ctx, missionID)
	if err != nil {
		return domain.MissionOutcome{}, fmt.Errorf("load mission %q: %w", missionID, err)
	}
	if choiceIndex < 0 || choiceIndex >= len(mission.Choices) {
		return domain.MissionOutcome{}, domain.ErrChoiceOutOfRange
	}
	choice := mission.Choices[choiceIndex]

	delta := choice.DeltaXP
	success := delta > 0
	outcome := domain.MissionOutcome{
		MissionID: missionID,
		Delta:     delta,
		Badge:     choice.Badge,
		Feedback:  choice.Feedback,
		Success:   success,
	}
	if success {
		outcome.XP = delta
	}

	if ident.Anonymous() {
		outcome.Locked = true
		return outcome, nil
	}

	alreadyCleared := false
	profile, err := s.ledger.Profile(ctx, ident.UID)
	if err == nil {
		alreadyCleared = profile.HasCompletedMission(missionID)
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		log.Warn().Err(err).Str("uid", ident.UID).Msg("mission clear check failed")
	}

	if alreadyCleared && delta > 0 {
		outcome.AlreadyCleared = true
		outcome.Feedback = "Mission already cleared. Pick a fresh challenge!"
		return outcome, nil
	}
	outcome.Completed = success && !alreadyCleared

	// the choice's badge lands either way; wrong moves earn cautionary badges
	ev := domain.RewardEvent{
		Delta: delta,
		Badge: choice.Badge,
		Mission: &domain.MissionResult{
			ID:        missionID,
			Name:      mission.Title,
			Type:      mission.Type,
			Delta:     delta,
			XP:        outcome.XP,
			Badge:     choice.Badge,
			Feedback:  choice.Feedback,
			Success:   success,
			Completed: outcome.Completed,
		},
	}
	if _, err := s.ledger.Award(ctx, ident, ev); err != nil {
		log.Error().Err(err).Str("mission", missionID).Str("uid", ident.UID).
			Msg("mission settlement failed")
		outcome.SaveError = saveFailedMessage
	}
	return outcome, nil
}
