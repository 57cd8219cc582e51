package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"

	"careerhub-backend/dto"
	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

type AuthService struct {
	users  repository.UserStore
	secret string
}

func NewAuthService(users repository.UserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Register hashes the password, generates a careerHubId when the
// client did not supply one, and inserts the account. A duplicate
// email/username/careerHubId comes back as a Conflict.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Username == "" {
		return nil, apperror.ValidationFailed("user", "name, email and username are required")
	}
	if req.Password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	careerHubID := req.CareerHubID
	if careerHubID == "" {
		careerHubID = "CH-" + xid.New().String()
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		CareerHubID:    careerHubID,
		Username:       req.Username,
		Password:       string(hashed),
		AccountPrivacy: req.AccountPrivacy,
		Photo:          req.Photo,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Biography:      req.Biography,
		Skills:         req.Skills,
		Location:       req.Location,
		State:          req.State,
		Country:        req.Country,
		Phone:          req.Phone,
		Followers:      []string{},
		Following:      []string{},
		Messages:       []models.Message{},
	}
	if user.AccountPrivacy == "" {
		user.AccountPrivacy = "public"
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues an HS256 token. Unknown
// email and wrong password both answer "Invalid credentials".
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.ValidationFailed("credentials", "Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", apperror.ValidationFailed("credentials", "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, "", err
	}

	return user, signed, nil
}
