package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitstack/memberd/svc/membership"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cancelledAt := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		start, end  string
		cancelledAt *time.Time
		today       string
		want        membership.Status
	}{
		{
			name: "active mid-period", start: "2026-01-01", end: "2026-01-31", today: "2026-01-15",
			want: membership.Status{Active: true},
		},
		{
			name: "active on start date", start: "2026-01-01", end: "2026-01-31", today: "2026-01-01",
			want: membership.Status{Active: true},
		},
		{
			name: "ends today is also still active", start: "2026-01-01", end: "2026-01-31", today: "2026-01-31",
			want: membership.Status{Active: true, EndsToday: true},
		},
		{
			name: "expired the day after", start: "2026-01-01", end: "2026-01-31", today: "2026-02-01",
			want: membership.Status{Expired: true},
		},
		{
			name: "future before start", start: "2026-01-01", end: "2026-01-31", today: "2025-12-31",
			want: membership.Status{Future: true},
		},
		{
			name: "cancelled is never active", start: "2026-01-01", end: "2026-01-31",
			cancelledAt: &cancelledAt, today: "2026-01-15",
			want: membership.Status{Cancelled: true},
		},
		{
			name: "cancelled suppresses ends-today", start: "2026-01-01", end: "2026-01-31",
			cancelledAt: &cancelledAt, today: "2026-01-31",
			want: membership.Status{Cancelled: true},
		},
		{
			name: "cancelled and expired", start: "2026-01-01", end: "2026-01-31",
			cancelledAt: &cancelledAt, today: "2026-02-10",
			want: membership.Status{Cancelled: true, Expired: true},
		},
		{
			name: "cancelled and future", start: "2026-03-01", end: "2026-03-31",
			cancelledAt: &cancelledAt, today: "2026-02-10",
			want: membership.Status{Cancelled: true, Future: true},
		},
		{
			name: "single day membership on its day", start: "2026-01-05", end: "2026-01-05", today: "2026-01-05",
			want: membership.Status{Active: true, EndsToday: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := membership.Classify(tt.start, tt.end, tt.cancelledAt, tt.today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMembership_StatusAt(t *testing.T) {
	t.Parallel()

	m := membership.Membership{StartDate: "2026-01-01", EndDate: "2026-01-31"}
	assert.True(t, m.StatusAt("2026-01-15").Active)
	assert.True(t, m.StatusAt("2026-02-01").Expired)

	wp := membership.WithPlan{StartDate: "2026-01-01", EndDate: "2026-01-31"}
	assert.True(t, wp.StatusAt("2026-01-31").EndsToday)
}
