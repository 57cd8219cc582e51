package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

type ApplicationStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Application, error)
	Insert(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Application, error)
}

type MongoApplicationStore struct {
	col *mongo.Collection
}

func NewMongoApplicationStore(db *mongo.Database) *MongoApplicationStore {
	return &MongoApplicationStore{col: db.Collection("applications")}
}

func (s *MongoApplicationStore) FindByUser(ctx context.Context, userID string) ([]models.Application, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *MongoApplicationStore) Insert(ctx context.Context, app *models.Application) error {
	res, err := s.col.InsertOne(ctx, app)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		app.ID = oid
	}
	return nil
}

// Delete is a no-op for an id that no longer exists; only a malformed
// id is an error.
func (s *MongoApplicationStore) Delete(ctx context.Context, id string) error {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apperror.ValidationFailed("id", "invalid application id")
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (s *MongoApplicationStore) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("Application")
	}

	var app models.Application
	err = s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Application")
		}
		return nil, err
	}
	return &app, nil
}
