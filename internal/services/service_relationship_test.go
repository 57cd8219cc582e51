package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/repository"
)

func TestFollowIsIdempotent(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewRelationshipService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	for i := 0; i < 2; i++ {
		_, err := svc.Follow(ctx, alice.ID.Hex(), bob.ID.Hex())
		require.NoError(t, err)
	}

	gotAlice, err := store.FindByID(ctx, alice.ID.Hex())
	require.NoError(t, err)
	gotBob, err := store.FindByID(ctx, bob.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, []string{bob.ID.Hex()}, gotAlice.Following)
	assert.Equal(t, []string{alice.ID.Hex()}, gotBob.Followers)
}

func TestFollowIsSymmetric(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewRelationshipService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	updated, err := svc.Follow(ctx, alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)
	assert.Contains(t, updated.Following, bob.ID.Hex())

	gotBob, err := store.FindByID(ctx, bob.ID.Hex())
	require.NoError(t, err)
	assert.Contains(t, gotBob.Followers, alice.ID.Hex())
}

func TestUnfollowRestoresPreFollowState(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewRelationshipService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	_, err := svc.Follow(ctx, alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)
	updated, err := svc.Unfollow(ctx, alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	assert.Empty(t, updated.Following)
	gotBob, err := store.FindByID(ctx, bob.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, gotBob.Followers)
}

func TestUnfollowNonMemberIsNoop(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewRelationshipService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	updated, err := svc.Unfollow(ctx, alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, updated.Following)
}

func TestFollowUnknownUser(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewRelationshipService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")

	tests := []struct {
		name     string
		follower string
		target   string
	}{
		{name: "unknown target", follower: alice.ID.Hex(), target: "64f000000000000000000000"},
		{name: "unknown follower", follower: "64f000000000000000000000", target: alice.ID.Hex()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Follow(ctx, tt.follower, tt.target)
			assert.ErrorIs(t, err, apperror.ErrNotFound)
		})
	}
}

func TestFollowSelfRejected(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewRelationshipService(store)

	alice := newTestUser(t, store, "alice")

	_, err := svc.Follow(context.Background(), alice.ID.Hex(), alice.ID.Hex())
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
