package mongodb

import (
	"context"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure NotificationRepository implements the interface
var _ repositories.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository handles MongoDB operations for Notification
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		collection: db.Collection("notifications"),
	}
}

// Create inserts a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

// FindByUser lists a user's notifications, newest first
func (r *NotificationRepository) FindByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return notifications, nil
}

// DeleteByUser removes all notifications of a user (permanent-delete cascade)
func (r *NotificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
