package checkin

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence interface for check-ins.
type Store interface {
	// Insert persists a check-in; the database assigns the timestamp.
	Insert(ctx context.Context, memberID uuid.UUID) (*Checkin, error)

	// StatsByMember returns the member's last check-in and the count in
	// the trailing 30 days.
	StatsByMember(ctx context.Context, memberID uuid.UUID) (*Stats, error)
}

// MemberDirectory is the member-existence slice the gate needs.
type MemberDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ActiveMembershipChecker asks the membership service whether a member
// holds an active membership at the current business date.
type ActiveMembershipChecker interface {
	HasActive(ctx context.Context, memberID uuid.UUID) (bool, error)
}
