package member

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitstack/memberd/svc/checkin"
	"github.com/fitstack/memberd/svc/membership"
)

// Store is the persistence interface for members.
type Store interface {
	// Insert persists a new member. Returns ErrEmailTaken when the
	// email is already registered.
	Insert(ctx context.Context, name, email string) (*Member, error)

	// List returns all members ordered by name.
	List(ctx context.Context) ([]Member, error)

	// Search returns members whose name or email matches the query,
	// case-insensitively, ordered by name.
	Search(ctx context.Context, query string) ([]Member, error)

	// FindByID returns ErrNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)

	// Exists reports whether the member ID references a member.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// MembershipHistory is the membership-service slice the summary needs.
type MembershipHistory interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]membership.WithPlan, error)
}

// ActivityStats is the check-in-service slice the summary needs.
type ActivityStats interface {
	StatsByMember(ctx context.Context, memberID uuid.UUID) (*checkin.Stats, error)
}
