package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"careerhub-backend/dto"
	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

const (
	UsernameTaken     = "taken"
	UsernameAvailable = "available"
)

type UserService struct {
	users repository.UserStore
}

func NewUserService(users repository.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// CheckUsername is advisory: it tells the caller whether the name is
// free right now, excluding the caller's own account so that a user
// rechecking their current username sees "available". The unique index
// on users.username is what actually rejects a race at write time.
func (s *UserService) CheckUsername(ctx context.Context, username, excludeID string) (string, error) {
	if len(username) < 3 {
		return "", apperror.ValidationFailed("username", "Username must be at least 3 characters")
	}

	existing, err := s.users.FindByUsername(ctx, username, excludeID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return UsernameTaken, nil
	}
	return UsernameAvailable, nil
}

// UpdateProfile applies a partial patch to the mutable profile fields.
// A non-empty password in the patch is re-hashed; an empty one is
// dropped. Duplicate email/username surfaces as a Conflict.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch dto.ProfileUpdate) (*models.User, error) {
	set := bson.M{}

	setString := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setString("name", patch.Name)
	setString("email", patch.Email)
	setString("username", patch.Username)
	setString("accountPrivacy", patch.AccountPrivacy)
	setString("usernameStatus", patch.UsernameStatus)
	setString("photo", patch.Photo)
	setString("bannerImage", patch.BannerImage)
	setString("gender", patch.Gender)
	setString("dateOfBirth", patch.DateOfBirth)
	setString("biography", patch.Biography)
	setString("experience", patch.Experience)
	setString("education", patch.Education)
	setString("location", patch.Location)
	setString("state", patch.State)
	setString("country", patch.Country)
	setString("phone", patch.Phone)
	setString("githubUrl", patch.GithubURL)
	setString("linkedinUrl", patch.LinkedinURL)
	setString("telegramId", patch.TelegramID)
	setString("instagramId", patch.InstagramID)
	setString("discordId", patch.DiscordID)
	if patch.Skills != nil {
		set["skills"] = *patch.Skills
	}

	if patch.Password != nil && *patch.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		set["password"] = string(hashed)
	}

	if len(set) == 0 {
		return s.users.FindByID(ctx, userID)
	}
	return s.users.UpdateFields(ctx, userID, set)
}
