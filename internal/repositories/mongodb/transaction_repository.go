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

// Compile-time check to ensure TransactionRepository implements the interface
var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository handles MongoDB operations for Transaction
type TransactionRepository struct {
	collection *mongo.Collection
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{
		collection: db.Collection("transactions"),
	}
}

// Create inserts a new transaction. The unique transactionId index and the
// partial unique (userId, month, pending) index back the application-level
// duplicate checks.
func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	transaction.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, transaction)
	return err
}

// FindByTransactionID finds a transaction by its external id
func (r *TransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.collection.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&transaction)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &transaction, nil
}

// FindPendingByUserAndMonth finds a user's pending request for a month
func (r *TransactionRepository) FindPendingByUserAndMonth(ctx context.Context, userID int64, month string) (*models.Transaction, error) {
	var transaction models.Transaction
	filter := bson.M{"userId": userID, "month": month, "status": models.StatusPending}
	err := r.collection.FindOne(ctx, filter).Decode(&transaction)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// FindPending lists every pending request
func (r *TransactionRepository) FindPending(ctx context.Context) ([]*models.Transaction, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []*models.Transaction
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}
	return transactions, nil
}

// UpdateStatusIfPending atomically decides a pending transaction. The status
// filter makes a second approve/reject a no-match instead of a double write.
func (r *TransactionRepository) UpdateStatusIfPending(ctx context.Context, transactionID, status string) (*models.Transaction, error) {
	filter := bson.M{"transactionId": transactionID, "status": models.StatusPending}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var transaction models.Transaction
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&transaction)
	if err != nil {
		return nil, err // mongo.ErrNoDocuments: missing or already decided
	}
	return &transaction, nil
}

// DeleteByUser removes all transactions of a user (permanent-delete cascade)
func (r *TransactionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
