// Package plan holds the membership plan catalog. Plans are read-only
// reference data: seeded at startup, listed by the API, and consulted by
// the membership service to derive end dates.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DurationUnit is the calendar unit a plan's duration is measured in.
type DurationUnit string

const (
	UnitDay   DurationUnit = "day"
	UnitMonth DurationUnit = "month"
	UnitYear  DurationUnit = "year"
)

// ParseDurationUnit validates a raw unit string.
func ParseDurationUnit(s string) (DurationUnit, error) {
	switch u := DurationUnit(s); u {
	case UnitDay, UnitMonth, UnitYear:
		return u, nil
	default:
		return "", fmt.Errorf("invalid duration unit %q", s)
	}
}

// Plan describes a membership plan. MonthlyCost is display-only and kept
// as the numeric's string form to avoid float rounding.
type Plan struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	MonthlyCost   string       `json:"monthlyCost"`
	DurationValue int          `json:"durationValue"`
	DurationUnit  DurationUnit `json:"durationUnit"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
