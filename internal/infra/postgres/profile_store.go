package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"scamslayer-service/internal/domain"
)

// ProfileStore persists profiles as JSONB rows. The merge runs inside a
// transaction with the row locked, so best-score comparisons cannot race
// between concurrent sessions of the same user.
type ProfileStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool, now: time.Now}
}

func (s *ProfileStore) Get(ctx context.Context, uid string) (domain.Profile, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM profiles WHERE uid=$1`, uid).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileStore) Apply(ctx context.Context, uid, name string, ev domain.RewardEvent) (domain.Profile, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	now := s.now()
	var profile domain.Profile
	var raw []byte
	err = tx.QueryRow(ctx, `SELECT data FROM profiles WHERE uid=$1 FOR UPDATE`, uid).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		profile = domain.NewProfile(uid, name, now)
	case err != nil:
		return domain.Profile{}, fmt.Errorf("lock profile: %w", err)
	default:
		if err := json.Unmarshal(raw, &profile); err != nil {
			return domain.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
		}
	}

	profile.ApplyReward(ev, now)

	merged, err := json.Marshal(profile)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("marshal profile: %w", err)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (uid, data) VALUES ($1, $2)
		 ON CONFLICT (uid) DO UPDATE SET data=EXCLUDED.data`,
		uid, merged)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("store profile: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Profile{}, fmt.Errorf("commit: %w", err)
	}
	return profile, nil
}
