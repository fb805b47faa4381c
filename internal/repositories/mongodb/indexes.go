package mongodb

import (
	"context"

	"github.com/nanjundeshwara/stores-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints that back the
// check-then-act validations in the services: a transaction id can be used
// once, a user can have one payment per month, and one pending request per
// month. CreateMany is idempotent for already-existing indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("transactions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "month", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.StatusPending}),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("payments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "month", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("villages").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
