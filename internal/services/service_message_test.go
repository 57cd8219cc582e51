package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/repository"
)

func TestSendMessageFansOutToBothLogs(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewMessageService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	receiverLog, senderLog, err := svc.Send(ctx, alice.ID.Hex(), bob.ID.Hex(), "hello")
	require.NoError(t, err)

	require.Len(t, receiverLog, 1)
	require.Len(t, senderLog, 1)
	assert.Equal(t, "hello", receiverLog[0].Message)
	assert.Equal(t, "hello", senderLog[0].Message)
	assert.Equal(t, alice.ID.Hex(), receiverLog[0].SenderID)
	assert.Equal(t, receiverLog[0].SenderID, senderLog[0].SenderID)
	assert.Equal(t, receiverLog[0].Timestamp, senderLog[0].Timestamp)

	// The two copies are independent entries: changing the one
	// returned for the receiver must not reach the sender's log.
	receiverLog[0].Message = "tampered"
	gotAlice, err := store.FindByID(ctx, alice.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "hello", gotAlice.Messages[0].Message)
}

func TestSendMessageSnapshotsSenderUsername(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewMessageService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	_, _, err := svc.Send(ctx, alice.ID.Hex(), bob.ID.Hex(), "hi")
	require.NoError(t, err)

	// Rename the sender; the message keeps the old username.
	users := NewUserService(store)
	newName := "alice_renamed"
	_, err = users.UpdateProfile(ctx, alice.ID.Hex(), profilePatch(&newName))
	require.NoError(t, err)

	gotBob, err := store.FindByID(ctx, bob.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "alice", gotBob.Messages[0].SenderUsername)
}

func TestListMessagesNewestFirst(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewMessageService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	next := base
	svc.now = func() time.Time {
		next = next.Add(time.Minute)
		return next
	}

	for _, text := range []string{"first", "second", "third"} {
		_, _, err := svc.Send(ctx, alice.ID.Hex(), bob.ID.Hex(), text)
		require.NoError(t, err)
	}

	messages, err := svc.List(ctx, bob.ID.Hex())
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].Message)
	assert.Equal(t, "second", messages[1].Message)
	assert.Equal(t, "first", messages[2].Message)
	assert.True(t, messages[0].Timestamp.After(messages[1].Timestamp))
}

func TestSendMessageUnknownUser(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewMessageService(store)
	ctx := context.Background()

	alice := newTestUser(t, store, "alice")

	_, _, err := svc.Send(ctx, alice.ID.Hex(), "64f000000000000000000000", "hello")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, _, err = svc.Send(ctx, "64f000000000000000000000", alice.ID.Hex(), "hello")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListMessagesUnknownUser(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewMessageService(store)

	_, err := svc.List(context.Background(), "64f000000000000000000000")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
