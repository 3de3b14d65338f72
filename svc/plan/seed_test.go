package plan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitstack/memberd/svc/plan"
)

type fakeStore struct {
	upserted []plan.Plan
}

func (s *fakeStore) List(ctx context.Context) ([]plan.Plan, error) { return s.upserted, nil }

func (s *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	return nil, plan.ErrNotFound
}

func (s *fakeStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) { return false, nil }

func (s *fakeStore) Upsert(ctx context.Context, p plan.Plan) error {
	s.upserted = append(s.upserted, p)
	return nil
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("upserts every entry", func(t *testing.T) {
		t.Parallel()
		path := writeSeed(t, `
- name: Monthly
  monthly_cost: "49.90"
  duration_value: 1
  duration_unit: month
- name: Day Pass
  monthly_cost: "15.00"
  duration_value: 1
  duration_unit: day
`)
		store := &fakeStore{}
		require.NoError(t, plan.Seed(ctx, store, path))

		require.Len(t, store.upserted, 2)
		assert.Equal(t, "Monthly", store.upserted[0].Name)
		assert.Equal(t, plan.UnitMonth, store.upserted[0].DurationUnit)
		assert.Equal(t, "15.00", store.upserted[1].MonthlyCost)
		assert.Equal(t, plan.UnitDay, store.upserted[1].DurationUnit)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{}
		err := plan.Seed(ctx, store, filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, plan.ErrInvalidSeed)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()
		path := writeSeed(t, "not: [valid")
		err := plan.Seed(ctx, &fakeStore{}, path)
		assert.ErrorIs(t, err, plan.ErrInvalidSeed)
	})

	t.Run("unknown duration unit fails", func(t *testing.T) {
		t.Parallel()
		path := writeSeed(t, `
- name: Weird
  monthly_cost: "10.00"
  duration_value: 1
  duration_unit: fortnight
`)
		store := &fakeStore{}
		err := plan.Seed(ctx, store, path)
		assert.ErrorIs(t, err, plan.ErrInvalidSeed)
		assert.Empty(t, store.upserted)
	})

	t.Run("non-positive duration fails", func(t *testing.T) {
		t.Parallel()
		path := writeSeed(t, `
- name: Free Forever
  monthly_cost: "0.00"
  duration_value: 0
  duration_unit: month
`)
		err := plan.Seed(ctx, &fakeStore{}, path)
		assert.ErrorIs(t, err, plan.ErrInvalidSeed)
	})
}

func TestParseDurationUnit(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"day", "month", "year"} {
		unit, err := plan.ParseDurationUnit(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(unit))
	}

	_, err := plan.ParseDurationUnit("week")
	assert.Error(t, err)
}
