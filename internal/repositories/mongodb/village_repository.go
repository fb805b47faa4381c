package mongodb

import (
	"context"

	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure VillageRepository implements the interface
var _ repositories.VillageRepository = (*VillageRepository)(nil)

// VillageRepository handles MongoDB operations for Village
type VillageRepository struct {
	collection *mongo.Collection
}

// NewVillageRepository creates a new VillageRepository
func NewVillageRepository(db *mongo.Database) *VillageRepository {
	return &VillageRepository{
		collection: db.Collection("villages"),
	}
}

// EnsureExists upserts the village by name, so concurrent first references
// cannot create duplicates.
func (r *VillageRepository) EnsureExists(ctx context.Context, name string) error {
	filter := bson.M{"name": name}
	update := bson.M{"$setOnInsert": bson.M{"name": name}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindAll retrieves all villages sorted by name
func (r *VillageRepository) FindAll(ctx context.Context) ([]*models.Village, error) {
	var villages []*models.Village
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &villages); err != nil {
		return nil, err
	}
	if villages == nil {
		villages = []*models.Village{}
	}
	return villages, nil
}
