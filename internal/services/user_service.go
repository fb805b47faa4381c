package services

import (
	"context"
	"errors"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Customers with no payment in this window count as inactive.
const inactivityWindow = 2 // months

// Compile-time check to ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// UserServiceImpl handles customer lifecycle business logic
type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	paymentRepo      repositories.PaymentRepository
	villageRepo      repositories.VillageRepository
	notificationRepo repositories.NotificationRepository
	transactionRepo  repositories.TransactionRepository
	notifications    NotificationService
}

// NewUserService creates a new UserServiceImpl
func NewUserService(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	villageRepo repositories.VillageRepository,
	notificationRepo repositories.NotificationRepository,
	transactionRepo repositories.TransactionRepository,
	notifications NotificationService,
) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo:         userRepo,
		paymentRepo:      paymentRepo,
		villageRepo:      villageRepo,
		notificationRepo: notificationRepo,
		transactionRepo:  transactionRepo,
		notifications:    notifications,
	}
}

// CreateUser registers a customer, auto-creating the village and sending a
// welcome notification in the customer's language (request language when the
// customer has none).
func (s *UserServiceImpl) CreateUser(ctx context.Context, user *models.User, requestLang string) (*models.User, error) {
	if user.Village != "" {
		if err := s.villageRepo.EnsureExists(ctx, user.Village); err != nil {
			return nil, err
		}
	}

	notifyLang := user.Language
	if notifyLang == "" {
		notifyLang = requestLang
	}
	if user.Language == "" {
		user.Language = i18n.DefaultLang
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserIDExists
		}
		return nil, err
	}

	s.notifications.Notify(ctx, user.ID, notifyLang, i18n.KeyWelcomeMessage, map[string]string{
		"name": user.Name,
	})

	slog.Info("user created", "userId", user.ID, "village", user.Village)
	return user, nil
}

// GetUser retrieves a user by id
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.findUser(ctx, id)
}

// GetAllUsers lists active users with their payment counts
func (s *UserServiceImpl) GetAllUsers(ctx context.Context) ([]models.UserWithPayments, error) {
	users, err := s.userRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.withPaymentCounts(ctx, users)
}

// GetDeletedUsers lists the trash with payment counts
func (s *UserServiceImpl) GetDeletedUsers(ctx context.Context) ([]models.UserWithPayments, error) {
	users, err := s.userRepo.FindDeleted(ctx)
	if err != nil {
		return nil, err
	}
	return s.withPaymentCounts(ctx, users)
}

// SearchUsers finds active users by optional name/category/village filters
func (s *UserServiceImpl) SearchUsers(ctx context.Context, name, category, village string) ([]*models.User, error) {
	return s.userRepo.Search(ctx, name, category, village)
}

// SearchByVillage lists a village's active users with payment counts
func (s *UserServiceImpl) SearchByVillage(ctx context.Context, village string) ([]models.UserWithPayments, error) {
	users, err := s.userRepo.FindActiveByVillage(ctx, village)
	if err != nil {
		return nil, err
	}
	return s.withPaymentCounts(ctx, users)
}

// GetAllVillages lists all villages
func (s *UserServiceImpl) GetAllVillages(ctx context.Context) ([]*models.Village, error) {
	return s.villageRepo.FindAll(ctx)
}

// SoftDeleteUser moves a user to the trash
func (s *UserServiceImpl) SoftDeleteUser(ctx context.Context, id int64) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsDeleted {
		return ErrUserAlreadyDeleted
	}

	now := time.Now()
	user.IsDeleted = true
	user.DeletedAt = &now
	return s.userRepo.Update(ctx, user)
}

// RestoreUser brings a user back from the trash
func (s *UserServiceImpl) RestoreUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsDeleted {
		return nil, ErrUserNotDeleted
	}

	user.IsDeleted = false
	user.DeletedAt = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PermanentDeleteUser removes a trashed user and cascades the physical delete
// across payments, notifications and transactions.
func (s *UserServiceImpl) PermanentDeleteUser(ctx context.Context, id int64) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsDeleted {
		return ErrUserNotInTrash
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.notificationRepo.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteByUser(ctx, id); err != nil {
		return err
	}

	slog.Info("user permanently deleted", "userId", id)
	return nil
}

// UpdateLanguage sets a user's language preference
func (s *UserServiceImpl) UpdateLanguage(ctx context.Context, id int64, language string) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	user.Language = language
	return s.userRepo.Update(ctx, user)
}

// RegisterDevice stores a user's push-notification device token
func (s *UserServiceImpl) RegisterDevice(ctx context.Context, id int64, deviceToken string) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	user.DeviceToken = deviceToken
	return s.userRepo.Update(ctx, user)
}

// InactiveCustomers lists active customers whose latest payment is older than
// the inactivity window. One point query per customer; fine at this store's
// scale.
func (s *UserServiceImpl) InactiveCustomers(ctx context.Context) ([]models.InactiveCustomer, error) {
	users, err := s.userRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, -inactivityWindow, 0)
	inactive := []models.InactiveCustomer{}

	for _, user := range users {
		latest, err := s.paymentRepo.FindLatestByUser(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			inactive = append(inactive, models.InactiveCustomer{
				UserID:           user.ID,
				Name:             user.Name,
				Phone:            user.Phone,
				Village:          user.Village,
				Category:         user.Category,
				LastPaymentMonth: "Never",
			})
			continue
		}
		if latest.Date.Before(cutoff) {
			inactive = append(inactive, models.InactiveCustomer{
				UserID:            user.ID,
				Name:              user.Name,
				Phone:             user.Phone,
				Village:           user.Village,
				Category:          user.Category,
				LastPaymentMonth:  latest.Month,
				LastPaymentAmount: latest.Amount,
			})
		}
	}
	return inactive, nil
}

func (s *UserServiceImpl) findUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) withPaymentCounts(ctx context.Context, users []*models.User) ([]models.UserWithPayments, error) {
	ids := make([]int64, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}
	counts, err := s.paymentRepo.CountByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.UserWithPayments, len(users))
	for i, user := range users {
		result[i] = models.UserWithPayments{User: *user, PaymentCount: counts[user.ID]}
	}
	return result, nil
}
