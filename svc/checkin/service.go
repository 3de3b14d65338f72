package checkin

import (
	"context"

	"github.com/google/uuid"
)

// Service is the check-in gate.
type Service interface {
	// Record creates a check-in if the member exists and holds an
	// active membership; otherwise it fails without writing anything.
	Record(ctx context.Context, memberID uuid.UUID) (*Checkin, error)

	// StatsByMember reports recent activity for the member summary.
	StatsByMember(ctx context.Context, memberID uuid.UUID) (*Stats, error)
}

type service struct {
	store       Store
	members     MemberDirectory
	memberships ActiveMembershipChecker
}

// NewService wires the check-in gate.
func NewService(store Store, members MemberDirectory, memberships ActiveMembershipChecker) Service {
	if store == nil || members == nil || memberships == nil {
		panic("checkin: all dependencies are required")
	}
	return &service{store: store, members: members, memberships: memberships}
}

func (s *service) Record(ctx context.Context, memberID uuid.UUID) (*Checkin, error) {
	exists, err := s.members.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	active, err := s.memberships.HasActive(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrNoActiveMembership
	}

	return s.store.Insert(ctx, memberID)
}

func (s *service) StatsByMember(ctx context.Context, memberID uuid.UUID) (*Stats, error) {
	return s.store.StatsByMember(ctx, memberID)
}
