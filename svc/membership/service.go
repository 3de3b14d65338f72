package membership

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/svc/plan"
)

// AssignParams are the inputs for assigning a plan to a member.
// EndDate is optional; when empty it is derived from the plan duration.
type AssignParams struct {
	MemberID  uuid.UUID
	PlanID    uuid.UUID
	StartDate string
	EndDate   string
}

// Service manages the membership lifecycle.
type Service interface {
	Assign(ctx context.Context, params AssignParams) (*Membership, error)
	Cancel(ctx context.Context, id uuid.UUID, cancelDate string) (*Membership, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]WithPlan, error)
	HasActive(ctx context.Context, memberID uuid.UUID) (bool, error)
}

type service struct {
	store   Store
	members MemberDirectory
	plans   plan.Store
	clock   clock.BusinessClock
}

// NewService wires the lifecycle service. All dependencies are
// required; a nil dependency is a programming error and panics.
func NewService(store Store, members MemberDirectory, plans plan.Store, clk clock.BusinessClock) Service {
	if store == nil || members == nil || plans == nil || clk == nil {
		panic("membership: all dependencies are required")
	}
	return &service{store: store, members: members, plans: plans, clock: clk}
}

// Assign validates the member and plan, resolves the end date, and
// inserts the membership. The overlap check happens inside the store's
// atomic insert; an exclusion violation surfaces as ErrOverlap.
func (s *service) Assign(ctx context.Context, params AssignParams) (*Membership, error) {
	exists, err := s.members.Exists(ctx, params.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	p, err := s.plans.FindByID(ctx, params.PlanID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	endDate := params.EndDate
	if endDate == "" {
		endDate, err = ComputeEndDate(params.StartDate, p.DurationValue, p.DurationUnit)
		if err != nil {
			return nil, err
		}
	}

	if params.StartDate > endDate {
		return nil, ErrStartAfterEnd
	}

	return s.store.Insert(ctx, Membership{
		MemberID:  params.MemberID,
		PlanID:    params.PlanID,
		StartDate: params.StartDate,
		EndDate:   endDate,
	})
}

// Cancel stamps cancelledAt on the membership. Access remains valid
// through the original end date; cancellation only blocks renewal
// overlap and marks status. Expired memberships and backdated cancel
// dates are rejected, always against the business date rather than the
// server's UTC date.
func (s *service) Cancel(ctx context.Context, id uuid.UUID, cancelDate string) (*Membership, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	if m.CancelledAt != nil {
		return nil, ErrAlreadyCancelled
	}
	if m.EndDate < today {
		return nil, ErrAlreadyExpired
	}
	if cancelDate < today {
		return nil, ErrCancelDateInPast
	}

	return s.store.SetCancelled(ctx, id, s.clock.Now(), today)
}

func (s *service) ListByMember(ctx context.Context, memberID uuid.UUID) ([]WithPlan, error) {
	return s.store.ListByMember(ctx, memberID)
}

// HasActive reports whether the member may pass the check-in gate today.
func (s *service) HasActive(ctx context.Context, memberID uuid.UUID) (bool, error) {
	return s.store.HasActive(ctx, memberID, s.clock.Today())
}
