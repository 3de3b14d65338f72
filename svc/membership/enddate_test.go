package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/svc/membership"
	"github.com/fitstack/memberd/svc/plan"
)

func TestComputeEndDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		value int
		unit  plan.DurationUnit
		want  string
	}{
		{"one day pass starts and ends same day", "2026-01-01", 1, plan.UnitDay, "2026-01-01"},
		{"seven day pass", "2026-01-01", 7, plan.UnitDay, "2026-01-07"},
		{"day duration across month boundary", "2026-01-30", 5, plan.UnitDay, "2026-02-03"},
		{"one month from first of month", "2026-01-01", 1, plan.UnitMonth, "2026-01-31"},
		{"one month from jan 31 clamps into february", "2026-01-31", 1, plan.UnitMonth, "2026-02-27"},
		{"one month from jan 31 in leap year", "2024-01-31", 1, plan.UnitMonth, "2024-02-28"},
		{"one month from mid-month", "2026-01-15", 1, plan.UnitMonth, "2026-02-14"},
		{"three months", "2026-01-01", 3, plan.UnitMonth, "2026-03-31"},
		{"twelve months equals one year", "2026-03-10", 12, plan.UnitMonth, "2027-03-09"},
		{"months spanning year end", "2026-11-15", 3, plan.UnitMonth, "2027-02-14"},
		{"one year", "2026-06-01", 1, plan.UnitYear, "2027-05-31"},
		{"one year from leap day clamps to feb 28", "2024-02-29", 1, plan.UnitYear, "2025-02-27"},
		{"four years from leap day lands on leap day", "2024-02-29", 4, plan.UnitYear, "2028-02-28"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := membership.ComputeEndDate(tt.start, tt.value, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects non-positive duration", func(t *testing.T) {
		t.Parallel()
		_, err := membership.ComputeEndDate("2026-01-01", 0, plan.UnitMonth)
		assert.Error(t, err)
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		t.Parallel()
		_, err := membership.ComputeEndDate("01/31/2026", 1, plan.UnitMonth)
		assert.Error(t, err)
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		t.Parallel()
		_, err := membership.ComputeEndDate("2026-01-01", 1, plan.DurationUnit("week"))
		assert.Error(t, err)
	})
}

func TestComputeEndDate_Properties(t *testing.T) {
	t.Parallel()

	units := []plan.DurationUnit{plan.UnitDay, plan.UnitMonth, plan.UnitYear}

	rapid.Check(t, func(t *rapid.T) {
		start := time.Date(
			rapid.IntRange(1990, 2090).Draw(t, "year"),
			time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
			rapid.IntRange(1, 31).Draw(t, "day"),
			0, 0, 0, 0, time.UTC,
		).Format(clock.DateLayout)
		value := rapid.IntRange(1, 48).Draw(t, "value")
		unit := rapid.SampledFrom(units).Draw(t, "unit")

		got, err := membership.ComputeEndDate(start, value, unit)
		if err != nil {
			t.Fatalf("ComputeEndDate(%s, %d, %s): %v", start, value, unit, err)
		}

		// End date is always a valid date on or after the start date.
		end, err := time.Parse(clock.DateLayout, got)
		if err != nil {
			t.Fatalf("end date %q is not a valid date: %v", got, err)
		}
		if got < start {
			t.Fatalf("end %s precedes start %s", got, start)
		}

		// Day durations are exact: N days of access means N-1 days after
		// the start.
		if unit == plan.UnitDay {
			startDate, _ := time.Parse(clock.DateLayout, start)
			if days := int(end.Sub(startDate).Hours() / 24); days != value-1 {
				t.Fatalf("day duration %d covers %d extra days", value, days)
			}
		}
	})
}
