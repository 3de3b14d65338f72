package membership

import (
	"fmt"
	"time"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/svc/plan"
)

// ComputeEndDate derives the inclusive last day of access for a
// membership starting at startDate with the given plan duration. A
// duration of N units covers the half-open range
// [startDate, startDate + N units), so the result is that range's last
// day: one day before the calendar sum.
//
// Month and year arithmetic clamps instead of normalizing: Jan 31 plus
// one month lands on the last day of February, and Feb 29 plus a year
// lands on Feb 28 in non-leap years. time.AddDate would roll those
// overflows into the next month, which is not what a gym membership
// means by "one month".
func ComputeEndDate(startDate string, value int, unit plan.DurationUnit) (string, error) {
	if value <= 0 {
		return "", fmt.Errorf("duration value must be positive, got %d", value)
	}
	start, err := time.Parse(clock.DateLayout, startDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	var end time.Time
	switch unit {
	case plan.UnitDay:
		end = start.AddDate(0, 0, value)
	case plan.UnitMonth:
		end = addMonthsClamped(start, value)
	case plan.UnitYear:
		end = addMonthsClamped(start, 12*value)
	default:
		return "", fmt.Errorf("invalid duration unit %q", unit)
	}

	return end.AddDate(0, 0, -1).Format(clock.DateLayout), nil
}

// addMonthsClamped advances t by the given number of months, clamping
// the day-of-month to the target month's last valid day.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month; day zero
// of the next month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
