package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"scamslayer-service/internal/domain"
)

// ProfileRepository stores per-user ledgers. Apply must merge the event
// atomically against the stored record (mutex, transaction, or equivalent)
// so best-* comparisons cannot race between sessions, creating the profile
// with defaults when it does not exist, and must return the refreshed
// snapshot.
type ProfileRepository interface {
	Get(ctx context.Context, uid string) (domain.Profile, error)
	Apply(ctx context.Context, uid, name string, ev domain.RewardEvent) (domain.Profile, error)
}

// TeamRepository maintains the shared team XP aggregates.
type TeamRepository interface {
	AddXP(ctx context.Context, teamID string, delta int) error
}

// Ledger merges reward events into profiles and mirrors XP deltas onto team
// aggregates.
type Ledger struct {
	profiles ProfileRepository
	teams    TeamRepository
}

func NewLedger(profiles ProfileRepository, teams TeamRepository) *Ledger {
	return &Ledger{profiles: profiles, teams: teams}
}

// Award settles one reward event for a user and returns the refreshed
// profile. An empty uid is a recognized no-op: nothing is read or written
// and callers surface the locked-reward state instead. The team mirror is
// best-effort; its failure never fails the award.
func (l *Ledger) Award(ctx context.Context, ident domain.Identity, ev domain.RewardEvent) (domain.Profile, error) {
	if ident.Anonymous() {
		return domain.Profile{}, nil
	}

	profile, err := l.profiles.Apply(ctx, ident.UID, ident.Name, ev)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("apply reward: %w", err)
	}

	if profile.TeamID != "" && l.teams != nil {
		if err := l.teams.AddXP(ctx, profile.TeamID, ev.Delta); err != nil {
			log.Warn().Err(err).Str("team", profile.TeamID).Str("uid", ident.UID).
				Msg("team xp mirror failed")
		}
	}
	return profile, nil
}

// Profile fetches the stored ledger for a user.
func (l *Ledger) Profile(ctx context.Context, uid string) (domain.Profile, error) {
	return l.profiles.Get(ctx, uid)
}
