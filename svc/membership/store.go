package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence interface for memberships.
//
// The overlap invariant lives here, not in the service: Insert must be
// atomic with the overlap check so that two concurrent assignments for
// the same member cannot both pass a read-then-write race. The Postgres
// implementation relies on the memberships_no_overlap exclusion
// constraint and reports a violation as ErrOverlap.
type Store interface {
	// Insert persists a new membership and returns it with the
	// server-assigned ID and timestamps. Returns ErrOverlap when a
	// non-cancelled membership for the same member overlaps the range.
	Insert(ctx context.Context, m Membership) (*Membership, error)

	// FindByID returns ErrMembershipNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Membership, error)

	// ListByMember returns the member's full membership history joined
	// with plan names, most recent start date first.
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]WithPlan, error)

	// HasActive reports whether the member has a non-cancelled
	// membership whose inclusive range contains the business date.
	HasActive(ctx context.Context, memberID uuid.UUID, businessDate string) (bool, error)

	// SetCancelled stamps cancelledAt on a membership that is still
	// cancellable: not yet cancelled and not expired as of the business
	// date. Returns ErrAlreadyCancelled when no row qualifies, keeping
	// double-cancellation safe under concurrency.
	SetCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time, businessDate string) (*Membership, error)
}

// MemberDirectory is the slice of the member service the lifecycle
// needs: existence checks for assignment targets.
type MemberDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
