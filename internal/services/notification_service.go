package services

import (
	"context"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure NotificationServiceImpl implements NotificationService
var _ NotificationService = (*NotificationServiceImpl)(nil)

// NotificationServiceImpl renders catalog messages in the user's language and
// appends them to the notifications collection.
type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	catalog          *i18n.Catalog
}

// NewNotificationService creates a new NotificationServiceImpl
func NewNotificationService(notificationRepo repositories.NotificationRepository, catalog *i18n.Catalog) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		catalog:          catalog,
	}
}

// Notify renders key in lang and stores the notification. Failures are logged
// and swallowed: the triggering workflow already succeeded.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID int64, lang string, key i18n.Key, params map[string]string) {
	message := s.catalog.Render(ctx, key, lang, params)

	notification := &models.Notification{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		slog.Warn("failed to store notification", "error", err, "userId", userID, "key", string(key))
	}
}

// GetNotifications lists a user's notifications, newest first
func (s *NotificationServiceImpl) GetNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.notificationRepo.FindByUser(ctx, userID)
}
