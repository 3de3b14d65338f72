// Package membership implements the membership lifecycle: assignment
// with end-date derivation and overlap protection, cancellation, and
// status classification against the business date.
package membership

import (
	"time"

	"github.com/google/uuid"
)

// Membership is a member's access period on a plan. StartDate and
// EndDate are inclusive calendar dates in YYYY-MM-DD form; the member
// has access through and including EndDate. EndDate is fixed at
// creation and never recomputed. CancelledAt is set at most once and
// never cleared; cancellation does not shorten EndDate.
type Membership struct {
	ID          uuid.UUID  `json:"id"`
	MemberID    uuid.UUID  `json:"memberId"`
	PlanID      uuid.UUID  `json:"planId"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	CancelledAt *time.Time `json:"cancelledAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// WithPlan is a membership row joined with its plan name, as shown in
// a member's history.
type WithPlan struct {
	ID          uuid.UUID  `json:"id"`
	PlanName    string     `json:"planName"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// Status is the raw lifecycle classification of a membership at a given
// business date. The booleans are not all mutually exclusive: on the
// final day of a non-cancelled membership both Active and EndsToday are
// true, and presentation layers choose their own precedence.
type Status struct {
	Cancelled bool `json:"isCancelled"`
	Future    bool `json:"isFuture"`
	Expired   bool `json:"isExpired"`
	Active    bool `json:"isActive"`
	EndsToday bool `json:"isEndsToday"`
}

// Classify evaluates a membership's lifecycle state at today, a
// YYYY-MM-DD business date. Normalized date strings compare
// lexicographically, so no time parsing is involved.
func Classify(startDate, endDate string, cancelledAt *time.Time, today string) Status {
	cancelled := cancelledAt != nil
	future := startDate > today
	expired := endDate < today
	return Status{
		Cancelled: cancelled,
		Future:    future,
		Expired:   expired,
		Active:    !future && !expired && !cancelled,
		EndsToday: !cancelled && endDate == today,
	}
}

// StatusAt classifies m at the given business date.
func (m Membership) StatusAt(today string) Status {
	return Classify(m.StartDate, m.EndDate, m.CancelledAt, today)
}

// StatusAt classifies the joined row at the given business date.
func (m WithPlan) StatusAt(today string) Status {
	return Classify(m.StartDate, m.EndDate, m.CancelledAt, today)
}
