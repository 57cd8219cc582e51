package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub-backend/internal/models"
)

func TestFollowArraysKeepSetSemantics(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	u := &models.User{Email: "a@example.com", Username: "a", CareerHubID: "CH-a"}
	require.NoError(t, store.Insert(ctx, u))
	id := u.ID.Hex()

	for i := 0; i < 3; i++ {
		_, err := store.AddFollowing(ctx, id, "target")
		require.NoError(t, err)
	}
	got, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"target"}, got.Following)

	_, err = store.RemoveFollowing(ctx, id, "never-followed")
	require.NoError(t, err)
	_, err = store.RemoveFollowing(ctx, id, "target")
	require.NoError(t, err)

	got, err = store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Following)
}

func TestFindByIDReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	u := &models.User{Email: "a@example.com", Username: "a", CareerHubID: "CH-a"}
	require.NoError(t, store.Insert(ctx, u))

	_, err := store.AppendMessage(ctx, u.ID.Hex(), models.Message{Message: "hi"})
	require.NoError(t, err)

	first, err := store.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	first.Messages[0].Message = "tampered"

	second, err := store.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "hi", second.Messages[0].Message)
}
