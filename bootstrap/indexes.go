package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureUserIndexes creates the unique indexes that back the account
// uniqueness rules. The availability check in the profile service is
// advisory; these indexes are what actually reject a duplicate
// email/username/careerHubId at write time.
func EnsureUserIndexes(db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_username"),
			},
			{
				Keys:    bson.D{{Key: "careerHubId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_careerhub_id"),
			},
		},
	)
	return err
}

func EnsureApplicationIndexes(db *mongo.Database) error {
	_, err := db.Collection("applications").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("idx_user_id"),
		},
	)
	return err
}
