package member

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/pkg/pg"
)

type pgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore returns a Store backed by PostgreSQL.
func NewPgStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

func (s *pgStore) Insert(ctx context.Context, name, email string) (*Member, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO members (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, join_date, created_at, updated_at`,
		name, email)

	m, err := scanMember(row)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return m, nil
}

func (s *pgStore) List(ctx context.Context) ([]Member, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, join_date, created_at, updated_at
		FROM members
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (s *pgStore) Search(ctx context.Context, query string) ([]Member, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, join_date, created_at, updated_at
		FROM members
		WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (s *pgStore) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, email, join_date, created_at, updated_at
		FROM members
		WHERE id = $1`, id)

	m, err := scanMember(row)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *pgStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*Member, error) {
	var (
		m        Member
		joinDate time.Time
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &joinDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.JoinDate = joinDate.Format(clock.DateLayout)
	return &m, nil
}

func collectMembers(rows pgx.Rows) ([]Member, error) {
	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}
