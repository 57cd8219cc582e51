package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

// UserStore is the storage surface the services are written against.
// The mongo implementation below is the real one; tests substitute an
// in-memory fake.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByUsername returns (nil, nil) when no user other than
	// excludeID holds the username.
	FindByUsername(ctx context.Context, username, excludeID string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*models.User, error)

	AddFollowing(ctx context.Context, id, targetID string) (*models.User, error)
	AddFollower(ctx context.Context, id, followerID string) error
	RemoveFollowing(ctx context.Context, id, targetID string) (*models.User, error)
	RemoveFollower(ctx context.Context, id, followerID string) error

	AppendMessage(ctx context.Context, id string, msg models.Message) (*models.User, error)
}

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("User")
	}

	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByUsername(ctx context.Context, username, excludeID string) (*models.User, error) {
	filter := bson.M{"username": username}
	if objID, err := bson.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": objID}
	}

	var user models.User
	if err := s.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict(duplicateField(err))
		}
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (s *MongoUserStore) UpdateFields(ctx context.Context, id string, set bson.M) (*models.User, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("User")
	}

	var user models.User
	err = s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("User")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict(duplicateField(err))
		}
		return nil, err
	}
	return &user, nil
}

// $addToSet keeps the arrays set-like even when two follow requests
// for the same pair race past the service-level checks.
func (s *MongoUserStore) AddFollowing(ctx context.Context, id, targetID string) (*models.User, error) {
	return s.updateArray(ctx, id, bson.M{"$addToSet": bson.M{"following": targetID}})
}

func (s *MongoUserStore) AddFollower(ctx context.Context, id, followerID string) error {
	_, err := s.updateArray(ctx, id, bson.M{"$addToSet": bson.M{"followers": followerID}})
	return err
}

func (s *MongoUserStore) RemoveFollowing(ctx context.Context, id, targetID string) (*models.User, error) {
	return s.updateArray(ctx, id, bson.M{"$pull": bson.M{"following": targetID}})
}

func (s *MongoUserStore) RemoveFollower(ctx context.Context, id, followerID string) error {
	_, err := s.updateArray(ctx, id, bson.M{"$pull": bson.M{"followers": followerID}})
	return err
}

func (s *MongoUserStore) AppendMessage(ctx context.Context, id string, msg models.Message) (*models.User, error) {
	return s.updateArray(ctx, id, bson.M{"$push": bson.M{"messages": msg}})
}

func (s *MongoUserStore) updateArray(ctx context.Context, id string, update bson.M) (*models.User, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("User")
	}

	var user models.User
	err = s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

// duplicateField recovers the offending field from a duplicate-key
// write error by looking for the index name (uniq_email etc.).
func duplicateField(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "email"):
		return "email"
	case strings.Contains(msg, "username"):
		return "username"
	case strings.Contains(msg, "careerhub_id"), strings.Contains(msg, "careerHubId"):
		return "careerHubId"
	}
	return "key"
}
