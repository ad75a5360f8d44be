package memory

import (
	"context"
	"sync"
	"time"

	"scamslayer-service/internal/domain"
)

// TeamStore is an in-memory implementation of app.TeamRepository.
type TeamStore struct {
	mu    sync.RWMutex
	now   func() time.Time
	teams map[string]domain.Team
}

func NewTeamStore() *TeamStore {
	return &TeamStore{
		now:   time.Now,
		teams: make(map[string]domain.Team),
	}
}

func (s *TeamStore) AddXP(_ context.Context, teamID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[teamID]
	if !ok {
		team = domain.Team{ID: teamID}
	}
	team.XP += delta
	team.LastActive = s.now()
	s.teams[teamID] = team
	return nil
}

func (s *TeamStore) Get(_ context.Context, teamID string) (domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[teamID]
	if !ok {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	return team, nil
}
