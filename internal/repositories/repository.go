// Package repositories defines the storage interfaces the services depend on.
// The mongodb subpackage provides the MongoDB implementations.
package repositories

import (
	"context"

	"github.com/nanjundeshwara/stores-backend/internal/models"
)

// UserRepository handles storage operations for User documents.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	// FindActiveByIDAndPhone backs customer login: id + phone on non-deleted users.
	FindActiveByIDAndPhone(ctx context.Context, id int64, phone string) (*models.User, error)
	FindActive(ctx context.Context) ([]*models.User, error)
	FindDeleted(ctx context.Context) ([]*models.User, error)
	// Search matches active users; empty arguments are ignored, non-empty ones
	// are case-insensitive substring matches.
	Search(ctx context.Context, name, category, village string) ([]*models.User, error)
	FindActiveByVillage(ctx context.Context, village string) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository handles storage operations for Payment documents.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByUserAndMonth(ctx context.Context, userID int64, month string) (*models.Payment, error)
	// FindForUser lists a user's payments joined with the customer name;
	// month narrows the result when non-empty.
	FindForUser(ctx context.Context, userID int64, month string) ([]*models.PaymentWithCustomer, error)
	FindByMonth(ctx context.Context, month string) ([]*models.Payment, error)
	// CountByUsers returns the number of payments on record per user id.
	CountByUsers(ctx context.Context, userIDs []int64) (map[int64]int64, error)
	TotalAmountByUser(ctx context.Context, userID int64) (float64, error)
	FindLatestByUser(ctx context.Context, userID int64) (*models.Payment, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// VillageRepository handles storage operations for Village documents.
type VillageRepository interface {
	// EnsureExists creates the village if no document with that name exists.
	EnsureExists(ctx context.Context, name string) error
	FindAll(ctx context.Context) ([]*models.Village, error)
}

// NotificationRepository handles storage operations for Notification documents.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// TransactionRepository handles storage operations for Transaction documents
// (payment requests).
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
	FindPendingByUserAndMonth(ctx context.Context, userID int64, month string) (*models.Transaction, error)
	FindPending(ctx context.Context) ([]*models.Transaction, error)
	// UpdateStatusIfPending flips a pending transaction to status and returns
	// the updated document. mongo.ErrNoDocuments means there was no pending
	// transaction with that id (missing or already decided).
	UpdateStatusIfPending(ctx context.Context, transactionID, status string) (*models.Transaction, error)
	DeleteByUser(ctx context.Context, userID int64) error
}
