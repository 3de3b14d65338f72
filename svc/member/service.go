package member

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/svc/membership"
)

// Service manages members.
type Service interface {
	Register(ctx context.Context, name, email string) (*Member, error)
	List(ctx context.Context, search string) ([]Member, error)
	Summary(ctx context.Context, id uuid.UUID) (*Summary, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	store       Store
	memberships MembershipHistory
	activity    ActivityStats
	clock       clock.BusinessClock
}

// NewService wires the member service.
func NewService(store Store, memberships MembershipHistory, activity ActivityStats, clk clock.BusinessClock) Service {
	if store == nil || memberships == nil || activity == nil || clk == nil {
		panic("member: all dependencies are required")
	}
	return &service{store: store, memberships: memberships, activity: activity, clock: clk}
}

// Register creates a member. The duplicate-email check is advisory; the
// unique index backs it up, and the store maps that violation to
// ErrEmailTaken as well.
func (s *service) Register(ctx context.Context, name, email string) (*Member, error) {
	return s.store.Insert(ctx, name, strings.ToLower(strings.TrimSpace(email)))
}

func (s *service) List(ctx context.Context, search string) ([]Member, error) {
	if q := strings.TrimSpace(search); q != "" {
		return s.store.Search(ctx, q)
	}
	return s.store.List(ctx)
}

// Summary assembles the member detail view. The current membership is
// the most recent one whose range contains the business date; a
// cancelled membership still counts while in range, since cancellation
// does not revoke access before the end date.
func (s *service) Summary(ctx context.Context, id uuid.UUID) (*Summary, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.memberships.ListByMember(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.activity.StatsByMember(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	var current *membership.WithPlan
	for i := range history {
		status := history[i].StatusAt(today)
		if !status.Future && !status.Expired {
			current = &history[i]
			break
		}
	}

	if history == nil {
		history = []membership.WithPlan{}
	}

	return &Summary{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		JoinDate:         m.JoinDate,
		ActiveMembership: current,
		Memberships:      history,
		LastCheckinAt:    stats.LastCheckinAt,
		Count30Days:      stats.Count30Days,
	}, nil
}

func (s *service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Exists(ctx, id)
}
