// Package services implements the business workflows on top of the
// repository interfaces. Handlers depend on the interfaces defined here.
package services

import (
	"context"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
)

// UserService handles the customer lifecycle: creation with village
// auto-creation, listing/search, trash (soft delete), restore, and the
// cascading permanent delete.
type UserService interface {
	CreateUser(ctx context.Context, user *models.User, requestLang string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.UserWithPayments, error)
	GetDeletedUsers(ctx context.Context) ([]models.UserWithPayments, error)
	SearchUsers(ctx context.Context, name, category, village string) ([]*models.User, error)
	SearchByVillage(ctx context.Context, village string) ([]models.UserWithPayments, error)
	GetAllVillages(ctx context.Context) ([]*models.Village, error)
	SoftDeleteUser(ctx context.Context, id int64) error
	RestoreUser(ctx context.Context, id int64) (*models.User, error)
	PermanentDeleteUser(ctx context.Context, id int64) error
	UpdateLanguage(ctx context.Context, id int64, language string) error
	RegisterDevice(ctx context.Context, id int64, deviceToken string) error
	InactiveCustomers(ctx context.Context) ([]models.InactiveCustomer, error)
}

// PaymentService handles the payment ledger and the payment-request workflow
// (pending → approved/rejected) with its notification side effects.
type PaymentService interface {
	RecordPayment(ctx context.Context, userID int64, month string, amount float64) (*models.Payment, error)
	RequestPayment(ctx context.Context, userID int64, month string, amount float64, transactionID, requestLang string) (*models.Transaction, error)
	ApprovePayment(ctx context.Context, transactionID string) (*models.Payment, error)
	RejectPayment(ctx context.Context, transactionID string) (*models.Transaction, error)
	CheckPaymentStatus(ctx context.Context, userID int64, month string) (*models.PaymentStatus, error)
	TotalAmountPaid(ctx context.Context, userID int64) (float64, error)
	FindPayments(ctx context.Context, userID int64, month string) ([]*models.PaymentWithCustomer, error)
	PaymentsByMonth(ctx context.Context, month string) (*models.MonthReport, error)
	PendingTransactions(ctx context.Context) ([]*models.Transaction, error)
}

// NotificationService renders and stores in-app notifications and serves the
// per-user inbox.
type NotificationService interface {
	// Notify is best-effort: rendering and storage failures are logged and
	// never propagated, so a notification can't fail the triggering request.
	Notify(ctx context.Context, userID int64, lang string, key i18n.Key, params map[string]string)
	GetNotifications(ctx context.Context, userID int64) ([]*models.Notification, error)
}

// AuthService handles admin and customer logins.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}
