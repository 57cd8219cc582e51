package services

import (
	"context"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"careerhub-backend/dto"
	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/repository"
)

const testSecret = "test-secret"

func registerRequest(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Test " + username,
		Email:    username + "@example.com",
		Username: username,
		Password: "hunter22",
	}
}

func TestRegisterHashesPasswordAndGeneratesID(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewAuthService(store, testSecret)

	user, err := svc.Register(context.Background(), registerRequest("alice"))
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
	assert.True(t, strings.HasPrefix(user.CareerHubID, "CH-"))
	assert.Equal(t, "public", user.AccountPrivacy)
	assert.NotNil(t, user.Followers)
	assert.NotNil(t, user.Following)
	assert.NotNil(t, user.Messages)
	assert.False(t, user.ID.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewAuthService(store, testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest("alice"))
	require.NoError(t, err)

	dup := registerRequest("alice2")
	dup.Email = "alice@example.com"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterMissingFields(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewAuthService(store, testSecret)

	req := registerRequest("alice")
	req.Password = ""
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestLogin(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewAuthService(store, testSecret)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest("alice"))
	require.NoError(t, err)

	t.Run("success issues a parseable token", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, registered.ID.Hex(), claims["user_id"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.EqualError(t, err, "Invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.EqualError(t, err, "Invalid credentials")
	})
}
