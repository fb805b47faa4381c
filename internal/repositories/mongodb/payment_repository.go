package mongodb

import (
	"context"

	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PaymentRepository implements the interface
var _ repositories.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository handles MongoDB operations for Payment
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create inserts a new payment. The unique (userId, month) index turns a
// concurrent double-insert into a duplicate-key error.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// FindByUserAndMonth finds the payment for a (user, month) pair
func (r *PaymentRepository) FindByUserAndMonth(ctx context.Context, userID int64, month string) (*models.Payment, error) {
	var payment models.Payment
	filter := bson.M{"userId": userID, "month": month}
	err := r.collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &payment, nil
}

// FindForUser lists a user's payments joined with the customer's name through
// a $lookup on the users collection. An empty month returns all months.
func (r *PaymentRepository) FindForUser(ctx context.Context, userID int64, month string) ([]*models.PaymentWithCustomer, error) {
	match := bson.M{"userId": userID}
	if month != "" {
		match["month"] = month
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: "$customer"}},
		{{Key: "$project", Value: bson.M{
			"userId": 1,
			"month":  1,
			"amount": 1,
			"name":   "$customer.name",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*models.PaymentWithCustomer
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.PaymentWithCustomer{}
	}
	return payments, nil
}

// FindByMonth lists all payments recorded for a month label
func (r *PaymentRepository) FindByMonth(ctx context.Context, month string) ([]*models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"month": month})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, nil
}

// CountByUsers groups payments by user and counts them in a single pipeline
func (r *PaymentRepository) CountByUsers(ctx context.Context, userIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": bson.M{"$in": userIDs}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$userId",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		UserID int64 `bson:"_id"`
		Count  int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}

// TotalAmountByUser sums all payment amounts for one user
func (r *PaymentRepository) TotalAmountByUser(ctx context.Context, userID int64) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$userId",
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// FindLatestByUser returns the user's most recent payment by date
func (r *PaymentRepository) FindLatestByUser(ctx context.Context, userID int64) (*models.Payment, error) {
	var payment models.Payment
	opts := options.FindOne().SetSort(bson.M{"date": -1})
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&payment)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &payment, nil
}

// DeleteByUser removes all payments of a user (permanent-delete cascade)
func (r *PaymentRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
