package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"careerhub-backend/dto"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

func newTestUser(t *testing.T, store *repository.MemoryUserStore, username string) *models.User {
	t.Helper()
	u := &models.User{
		Name:        username,
		Email:       username + "@example.com",
		CareerHubID: "CH-" + username,
		Username:    username,
		Password:    "secret-hash",
		Followers:   []string{},
		Following:   []string{},
		Messages:    []models.Message{},
	}
	require.NoError(t, store.Insert(context.Background(), u))
	return u
}

func profilePatch(username *string) dto.ProfileUpdate {
	return dto.ProfileUpdate{Username: username}
}
