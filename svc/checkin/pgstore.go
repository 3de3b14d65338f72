package checkin

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore returns a Store backed by PostgreSQL.
func NewPgStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

func (s *pgStore) Insert(ctx context.Context, memberID uuid.UUID) (*Checkin, error) {
	var c Checkin
	err := s.pool.QueryRow(ctx, `
		INSERT INTO checkins (member_id)
		VALUES ($1)
		RETURNING id, member_id, checked_in_at`, memberID).
		Scan(&c.ID, &c.MemberID, &c.CheckedInAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *pgStore) StatsByMember(ctx context.Context, memberID uuid.UUID) (*Stats, error) {
	var stats Stats
	err := s.pool.QueryRow(ctx, `
		SELECT
			MAX(checked_in_at),
			COUNT(*) FILTER (WHERE checked_in_at >= now() - INTERVAL '30 days')
		FROM checkins
		WHERE member_id = $1`, memberID).
		Scan(&stats.LastCheckinAt, &stats.Count30Days)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
