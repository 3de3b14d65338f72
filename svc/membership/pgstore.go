package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/pkg/pg"
)

type pgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore returns a Store backed by PostgreSQL. The overlap guard is
// the memberships_no_overlap gist exclusion constraint, so Insert is
// atomic with the overlap check and concurrent overlapping assignments
// serialize inside the database.
func NewPgStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

func (s *pgStore) Insert(ctx context.Context, m Membership) (*Membership, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO memberships (member_id, plan_id, start_date, end_date)
		VALUES ($1, $2, $3::date, $4::date)
		RETURNING id, member_id, plan_id, start_date, end_date, cancelled_at, created_at, updated_at`,
		m.MemberID, m.PlanID, m.StartDate, m.EndDate)

	inserted, err := scanMembership(row)
	if err != nil {
		if pg.IsExclusionViolation(err) {
			return nil, ErrOverlap
		}
		if pg.IsForeignKeyViolation(err) {
			// The service checks existence first; this is the race
			// where a referenced row vanished between check and insert.
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return inserted, nil
}

func (s *pgStore) FindByID(ctx context.Context, id uuid.UUID) (*Membership, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, member_id, plan_id, start_date, end_date, cancelled_at, created_at, updated_at
		FROM memberships
		WHERE id = $1`, id)

	m, err := scanMembership(row)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *pgStore) ListByMember(ctx context.Context, memberID uuid.UUID) ([]WithPlan, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT m.id, p.name, m.start_date, m.end_date, m.cancelled_at
		FROM memberships m
		JOIN plans p ON p.id = m.plan_id
		WHERE m.member_id = $1
		ORDER BY m.start_date DESC`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []WithPlan
	for rows.Next() {
		var (
			item       WithPlan
			start, end time.Time
		)
		if err := rows.Scan(&item.ID, &item.PlanName, &start, &end, &item.CancelledAt); err != nil {
			return nil, err
		}
		item.StartDate = start.Format(clock.DateLayout)
		item.EndDate = end.Format(clock.DateLayout)
		history = append(history, item)
	}
	return history, rows.Err()
}

func (s *pgStore) HasActive(ctx context.Context, memberID uuid.UUID, businessDate string) (bool, error) {
	var active bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM memberships
			WHERE member_id = $1
			  AND cancelled_at IS NULL
			  AND start_date <= $2::date
			  AND end_date >= $2::date
		)`, memberID, businessDate).Scan(&active)
	return active, err
}

func (s *pgStore) SetCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time, businessDate string) (*Membership, error) {
	// Conditional update keeps double-cancellation atomic: only a
	// not-yet-cancelled, not-yet-expired row matches.
	row := s.pool.QueryRow(ctx, `
		UPDATE memberships
		SET cancelled_at = $2, updated_at = now()
		WHERE id = $1
		  AND cancelled_at IS NULL
		  AND end_date >= $3::date
		RETURNING id, member_id, plan_id, start_date, end_date, cancelled_at, created_at, updated_at`,
		id, cancelledAt, businessDate)

	m, err := scanMembership(row)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMembership(row rowScanner) (*Membership, error) {
	var (
		m          Membership
		start, end time.Time
	)
	err := row.Scan(&m.ID, &m.MemberID, &m.PlanID, &start, &end, &m.CancelledAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.StartDate = start.Format(clock.DateLayout)
	m.EndDate = end.Format(clock.DateLayout)
	return &m, nil
}
