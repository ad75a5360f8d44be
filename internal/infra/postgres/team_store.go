package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// TeamStore maintains team XP aggregates. The increment is a single UPDATE,
// so concurrent mirrors from different members are safe.
type TeamStore struct {
	pool *pgxpool.Pool
}

func NewTeamStore(pool *pgxpool.Pool) *TeamStore {
	return &TeamStore{pool: pool}
}

func (s *TeamStore) AddXP(ctx context.Context, teamID string, delta int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO teams (id, xp, last_active) VALUES ($1, $2, now())
		 ON CONFLICT (id) DO UPDATE SET xp = teams.xp + EXCLUDED.xp, last_active = now()`,
		teamID, delta)
	if err != nil {
		return fmt.Errorf("mirror team xp: %w", err)
	}
	return nil
}
