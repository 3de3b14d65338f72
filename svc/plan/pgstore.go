package plan

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitstack/memberd/pkg/pg"
)

type pgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore returns a Store backed by PostgreSQL.
func NewPgStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

const planColumns = `id, name, monthly_cost::text, duration_value, duration_unit, created_at, updated_at`

func (s *pgStore) List(ctx context.Context) ([]Plan, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+planColumns+`
		FROM plans
		ORDER BY monthly_cost`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.MonthlyCost, &p.DurationValue, &p.DurationUnit, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *pgStore) FindByID(ctx context.Context, id uuid.UUID) (*Plan, error) {
	var p Plan
	err := s.pool.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM plans
		WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.MonthlyCost, &p.DurationValue, &p.DurationUnit, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *pgStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (s *pgStore) Upsert(ctx context.Context, p Plan) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO plans (name, monthly_cost, duration_value, duration_unit)
		VALUES ($1, $2::numeric, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET monthly_cost = EXCLUDED.monthly_cost,
		    duration_value = EXCLUDED.duration_value,
		    duration_unit = EXCLUDED.duration_unit,
		    updated_at = now()`,
		p.Name, p.MonthlyCost, p.DurationValue, p.DurationUnit)
	return err
}
