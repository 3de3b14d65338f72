package checkin_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitstack/memberd/pkg/apperr"
	"github.com/fitstack/memberd/svc/checkin"
)

type fakeStore struct {
	inserted []checkin.Checkin
	stats    map[uuid.UUID]*checkin.Stats
}

func (s *fakeStore) Insert(ctx context.Context, memberID uuid.UUID) (*checkin.Checkin, error) {
	c := checkin.Checkin{
		ID:          uuid.New(),
		MemberID:    memberID,
		CheckedInAt: time.Now().UTC(),
	}
	s.inserted = append(s.inserted, c)
	return &c, nil
}

func (s *fakeStore) StatsByMember(ctx context.Context, memberID uuid.UUID) (*checkin.Stats, error) {
	if st, ok := s.stats[memberID]; ok {
		return st, nil
	}
	return &checkin.Stats{}, nil
}

type fakeMembers map[uuid.UUID]bool

func (f fakeMembers) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f[id], nil
}

type fakeActive map[uuid.UUID]bool

func (f fakeActive) HasActive(ctx context.Context, memberID uuid.UUID) (bool, error) {
	return f[memberID], nil
}

func TestService_Record(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("records check-in for active member", func(t *testing.T) {
		t.Parallel()
		memberID := uuid.New()
		store := &fakeStore{}
		svc := checkin.NewService(store, fakeMembers{memberID: true}, fakeActive{memberID: true})

		c, err := svc.Record(ctx, memberID)
		require.NoError(t, err)
		assert.Equal(t, memberID, c.MemberID)
		assert.False(t, c.CheckedInAt.IsZero())
		require.Len(t, store.inserted, 1)
	})

	t.Run("unknown member fails not found", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{}
		svc := checkin.NewService(store, fakeMembers{}, fakeActive{})

		_, err := svc.Record(ctx, uuid.New())
		assert.ErrorIs(t, err, checkin.ErrMemberNotFound)
		assert.Empty(t, store.inserted)
	})

	t.Run("member without active membership is denied and nothing is written", func(t *testing.T) {
		t.Parallel()
		memberID := uuid.New()
		store := &fakeStore{}
		svc := checkin.NewService(store, fakeMembers{memberID: true}, fakeActive{})

		_, err := svc.Record(ctx, memberID)
		assert.ErrorIs(t, err, checkin.ErrNoActiveMembership)
		assert.ErrorIs(t, err, apperr.KindValidation)
		assert.Empty(t, store.inserted)
	})
}

func TestService_StatsByMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	memberID := uuid.New()
	last := time.Date(2026, 1, 14, 18, 30, 0, 0, time.UTC)
	store := &fakeStore{stats: map[uuid.UUID]*checkin.Stats{
		memberID: {LastCheckinAt: &last, Count30Days: 12},
	}}
	svc := checkin.NewService(store, fakeMembers{memberID: true}, fakeActive{memberID: true})

	stats, err := svc.StatsByMember(ctx, memberID)
	require.NoError(t, err)
	require.NotNil(t, stats.LastCheckinAt)
	assert.Equal(t, last, *stats.LastCheckinAt)
	assert.Equal(t, 12, stats.Count30Days)

	stats, err = svc.StatsByMember(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stats.LastCheckinAt)
	assert.Zero(t, stats.Count30Days)
}
