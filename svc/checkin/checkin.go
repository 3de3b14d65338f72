// Package checkin records gym check-ins. A check-in is append-only and
// only allowed through the gate: the member must hold a non-cancelled
// membership covering the current business date.
package checkin

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitstack/memberd/pkg/apperr"
)

// Checkin is a single visit. CheckedInAt is server-assigned.
type Checkin struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"memberId"`
	CheckedInAt time.Time `json:"checkedInAt"`
}

// Stats summarizes a member's recent activity.
type Stats struct {
	LastCheckinAt *time.Time `json:"lastCheckinAt"`
	Count30Days   int        `json:"checkinCount30Days"`
}

var (
	ErrMemberNotFound = apperr.NotFound("member not found")

	// ErrNoActiveMembership closes the check-in gate.
	ErrNoActiveMembership = apperr.Validation("member does not have an active membership; check-in denied")
)
