package mongodb

import (
	"context"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure UserRepository implements the interface
var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository handles MongoDB operations for User
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user. The _id is caller-assigned, so a duplicate id
// surfaces as a duplicate-key error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// FindByID finds a user by its numeric id
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &user, nil
}

// FindActiveByIDAndPhone finds a non-deleted user matching id and phone
func (r *UserRepository) FindActiveByIDAndPhone(ctx context.Context, id int64, phone string) (*models.User, error) {
	var user models.User
	filter := bson.M{"_id": id, "phone": phone, "isDeleted": bson.M{"$ne": true}}
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActive retrieves all non-deleted users sorted by id
func (r *UserRepository) FindActive(ctx context.Context) ([]*models.User, error) {
	return r.find(ctx, bson.M{"isDeleted": bson.M{"$ne": true}}, bson.M{"_id": 1})
}

// FindDeleted retrieves the trash, most recently deleted first
func (r *UserRepository) FindDeleted(ctx context.Context) ([]*models.User, error) {
	return r.find(ctx, bson.M{"isDeleted": true}, bson.M{"deletedAt": -1})
}

// Search finds active users by optional name/category/village substrings
func (r *UserRepository) Search(ctx context.Context, name, category, village string) ([]*models.User, error) {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if category != "" {
		filter["category"] = bson.M{"$regex": category, "$options": "i"}
	}
	if village != "" {
		filter["village"] = bson.M{"$regex": village, "$options": "i"}
	}
	return r.find(ctx, filter, bson.M{"_id": 1})
}

// FindActiveByVillage retrieves active users with an exact village match
func (r *UserRepository) FindActiveByVillage(ctx context.Context, village string) ([]*models.User, error) {
	filter := bson.M{"village": village, "isDeleted": bson.M{"$ne": true}}
	return r.find(ctx, filter, bson.M{"_id": 1})
}

// Update replaces the stored fields of an existing user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete physically removes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UserRepository) find(ctx context.Context, filter, sort bson.M) ([]*models.User, error) {
	var users []*models.User
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}
