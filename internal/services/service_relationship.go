package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

// RelationshipService keeps the denormalized follow state symmetric:
// after a successful Follow(a, b), b is in a.following and a is in
// b.followers. The two sides are two independent document writes with
// no transaction around them, so an error between them can leave the
// pair asymmetric; the failure is logged and surfaced, never rolled
// back.
type RelationshipService struct {
	users repository.UserStore
}

func NewRelationshipService(users repository.UserStore) *RelationshipService {
	return &RelationshipService{users: users}
}

// Follow adds targetID to the follower's following set and followerID
// to the target's followers set. Repeat calls are no-ops; the arrays
// stay duplicate-free. Returns the updated follower document.
func (s *RelationshipService) Follow(ctx context.Context, followerID, targetID string) (*models.User, error) {
	if followerID == targetID {
		return nil, apperror.ValidationFailed("currentUserId", "cannot follow yourself")
	}

	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, followerID); err != nil {
		return nil, err
	}

	follower, err := s.users.AddFollowing(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddFollower(ctx, targetID, followerID); err != nil {
		// The pair is now asymmetric until a later follow or
		// unfollow repairs it.
		logrus.WithError(err).WithFields(logrus.Fields{
			"follower": followerID,
			"target":   targetID,
		}).Error("followers-side write failed after following-side write")
		return nil, err
	}

	return follower, nil
}

// Unfollow removes both sides of the relationship. Unfollowing a user
// that was never followed is a no-op, not an error.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, targetID string) (*models.User, error) {
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, followerID); err != nil {
		return nil, err
	}

	follower, err := s.users.RemoveFollowing(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.users.RemoveFollower(ctx, targetID, followerID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"follower": followerID,
			"target":   targetID,
		}).Error("followers-side write failed after following-side write")
		return nil, err
	}

	return follower, nil
}
