package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

// MemoryUserStore is an in-memory UserStore with the same write
// semantics as the mongo one (set-like follow arrays, unique
// email/username/careerHubId, value-copy message appends). Used by the
// tests and for running the API without a database.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Followers = append([]string(nil), u.Followers...)
	cp.Following = append([]string(nil), u.Following...)
	cp.Messages = append([]models.Message(nil), u.Messages...)
	cp.Skills = append([]string(nil), u.Skills...)
	return &cp
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	return copyUser(u), nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, apperror.NotFound("User")
}

func (s *MemoryUserStore) FindByUsername(_ context.Context, username, excludeID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Username == username && id != excludeID {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) FindAll(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *copyUser(u))
	}
	return out, nil
}

func (s *MemoryUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperror.Conflict("email")
		}
		if u.Username == user.Username {
			return apperror.Conflict("username")
		}
		if u.CareerHubID == user.CareerHubID {
			return apperror.Conflict("careerHubId")
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	s.users[user.ID.Hex()] = copyUser(user)
	return nil
}

func (s *MemoryUserStore) UpdateFields(_ context.Context, id string, set bson.M) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	if v, ok := set["email"].(string); ok {
		for otherID, other := range s.users {
			if otherID != id && other.Email == v {
				return nil, apperror.Conflict("email")
			}
		}
	}
	if v, ok := set["username"].(string); ok {
		for otherID, other := range s.users {
			if otherID != id && other.Username == v {
				return nil, apperror.Conflict("username")
			}
		}
	}
	for key, val := range set {
		applyField(u, key, val)
	}
	return copyUser(u), nil
}

func applyField(u *models.User, key string, val any) {
	str, _ := val.(string)
	switch key {
	case "name":
		u.Name = str
	case "email":
		u.Email = str
	case "username":
		u.Username = str
	case "password":
		u.Password = str
	case "accountPrivacy":
		u.AccountPrivacy = str
	case "usernameStatus":
		u.UsernameStatus = str
	case "photo":
		u.Photo = str
	case "bannerImage":
		u.BannerImage = str
	case "gender":
		u.Gender = str
	case "dateOfBirth":
		u.DateOfBirth = str
	case "biography":
		u.Biography = str
	case "experience":
		u.Experience = str
	case "education":
		u.Education = str
	case "location":
		u.Location = str
	case "state":
		u.State = str
	case "country":
		u.Country = str
	case "phone":
		u.Phone = str
	case "githubUrl":
		u.GithubURL = str
	case "linkedinUrl":
		u.LinkedinURL = str
	case "telegramId":
		u.TelegramID = str
	case "instagramId":
		u.InstagramID = str
	case "discordId":
		u.DiscordID = str
	case "skills":
		if skills, ok := val.([]string); ok {
			u.Skills = append([]string(nil), skills...)
		}
	}
}

func (s *MemoryUserStore) AddFollowing(_ context.Context, id, targetID string) (*models.User, error) {
	return s.mutateArrays(id, func(u *models.User) {
		u.Following = addToSet(u.Following, targetID)
	})
}

func (s *MemoryUserStore) AddFollower(_ context.Context, id, followerID string) error {
	_, err := s.mutateArrays(id, func(u *models.User) {
		u.Followers = addToSet(u.Followers, followerID)
	})
	return err
}

func (s *MemoryUserStore) RemoveFollowing(_ context.Context, id, targetID string) (*models.User, error) {
	return s.mutateArrays(id, func(u *models.User) {
		u.Following = pull(u.Following, targetID)
	})
}

func (s *MemoryUserStore) RemoveFollower(_ context.Context, id, followerID string) error {
	_, err := s.mutateArrays(id, func(u *models.User) {
		u.Followers = pull(u.Followers, followerID)
	})
	return err
}

func (s *MemoryUserStore) AppendMessage(_ context.Context, id string, msg models.Message) (*models.User, error) {
	return s.mutateArrays(id, func(u *models.User) {
		u.Messages = append(u.Messages, msg)
	})
}

func (s *MemoryUserStore) mutateArrays(id string, mutate func(u *models.User)) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	mutate(u)
	return copyUser(u), nil
}

func addToSet(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func pull(list []string, v string) []string {
	out := list[:0]
	for _, existing := range list {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}

// MemoryApplicationStore mirrors MongoApplicationStore for tests.
type MemoryApplicationStore struct {
	mu   sync.Mutex
	apps map[string]*models.Application
}

func NewMemoryApplicationStore() *MemoryApplicationStore {
	return &MemoryApplicationStore{apps: make(map[string]*models.Application)}
}

func (s *MemoryApplicationStore) FindByUser(_ context.Context, userID string) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Application
	for _, a := range s.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *MemoryApplicationStore) Insert(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID.IsZero() {
		app.ID = bson.NewObjectID()
	}
	cp := *app
	s.apps[app.ID.Hex()] = &cp
	return nil
}

func (s *MemoryApplicationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.apps, id)
	return nil
}

func (s *MemoryApplicationStore) UpdateStatus(_ context.Context, id, status string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return nil, apperror.NotFound("Application")
	}
	a.Status = status
	cp := *a
	return &cp, nil
}
