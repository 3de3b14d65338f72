// Package member manages gym member registration and lookup, and
// assembles the member summary shown on the dashboard.
package member

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitstack/memberd/pkg/apperr"
	"github.com/fitstack/memberd/svc/membership"
)

// Member is a registered gym member. Immutable after registration apart
// from the updated_at timestamp; members are never deleted.
type Member struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinDate  string    `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the member detail view: identity, current membership,
// full membership history, and recent check-in activity.
type Summary struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	JoinDate         string                `json:"joinDate"`
	ActiveMembership *membership.WithPlan  `json:"activeMembership"`
	Memberships      []membership.WithPlan `json:"memberships"`
	LastCheckinAt    *time.Time            `json:"lastCheckinAt"`
	Count30Days      int                   `json:"checkinCount30Days"`
}

var (
	ErrNotFound = apperr.NotFound("member not found")

	// ErrEmailTaken mirrors the unique index on members.email.
	ErrEmailTaken = apperr.Validation("email already exists")
)
