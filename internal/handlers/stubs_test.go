package handlers

import (
	"context"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/services"
)

// Function-field stubs so each test overrides only the method it exercises.

type stubUserService struct {
	createUser   func(ctx context.Context, user *models.User, requestLang string) (*models.User, error)
	getUser      func(ctx context.Context, id int64) (*models.User, error)
	softDelete   func(ctx context.Context, id int64) error
	restore      func(ctx context.Context, id int64) (*models.User, error)
	permanent    func(ctx context.Context, id int64) error
	updateLang   func(ctx context.Context, id int64, language string) error
	allUsers     func(ctx context.Context) ([]models.UserWithPayments, error)
	deletedUsers func(ctx context.Context) ([]models.UserWithPayments, error)
}

var _ services.UserService = (*stubUserService)(nil)

func (s *stubUserService) CreateUser(ctx context.Context, user *models.User, requestLang string) (*models.User, error) {
	return s.createUser(ctx, user, requestLang)
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, id)
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]models.UserWithPayments, error) {
	return s.allUsers(ctx)
}

func (s *stubUserService) GetDeletedUsers(ctx context.Context) ([]models.UserWithPayments, error) {
	return s.deletedUsers(ctx)
}

func (s *stubUserService) SearchUsers(context.Context, string, string, string) ([]*models.User, error) {
	return []*models.User{}, nil
}

func (s *stubUserService) SearchByVillage(context.Context, string) ([]models.UserWithPayments, error) {
	return []models.UserWithPayments{}, nil
}

func (s *stubUserService) GetAllVillages(context.Context) ([]*models.Village, error) {
	return []*models.Village{}, nil
}

func (s *stubUserService) SoftDeleteUser(ctx context.Context, id int64) error {
	return s.softDelete(ctx, id)
}

func (s *stubUserService) RestoreUser(ctx context.Context, id int64) (*models.User, error) {
	return s.restore(ctx, id)
}

func (s *stubUserService) PermanentDeleteUser(ctx context.Context, id int64) error {
	return s.permanent(ctx, id)
}

func (s *stubUserService) UpdateLanguage(ctx context.Context, id int64, language string) error {
	return s.updateLang(ctx, id, language)
}

func (s *stubUserService) RegisterDevice(context.Context, int64, string) error {
	return nil
}

func (s *stubUserService) InactiveCustomers(context.Context) ([]models.InactiveCustomer, error) {
	return []models.InactiveCustomer{}, nil
}

type stubPaymentService struct {
	record  func(ctx context.Context, userID int64, month string, amount float64) (*models.Payment, error)
	request func(ctx context.Context, userID int64, month string, amount float64, transactionID, requestLang string) (*models.Transaction, error)
	approve func(ctx context.Context, transactionID string) (*models.Payment, error)
	reject  func(ctx context.Context, transactionID string) (*models.Transaction, error)
	status  func(ctx context.Context, userID int64, month string) (*models.PaymentStatus, error)
}

var _ services.PaymentService = (*stubPaymentService)(nil)

func (s *stubPaymentService) RecordPayment(ctx context.Context, userID int64, month string, amount float64) (*models.Payment, error) {
	return s.record(ctx, userID, month, amount)
}

func (s *stubPaymentService) RequestPayment(ctx context.Context, userID int64, month string, amount float64, transactionID, requestLang string) (*models.Transaction, error) {
	return s.request(ctx, userID, month, amount, transactionID, requestLang)
}

func (s *stubPaymentService) ApprovePayment(ctx context.Context, transactionID string) (*models.Payment, error) {
	return s.approve(ctx, transactionID)
}

func (s *stubPaymentService) RejectPayment(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return s.reject(ctx, transactionID)
}

func (s *stubPaymentService) CheckPaymentStatus(ctx context.Context, userID int64, month string) (*models.PaymentStatus, error) {
	return s.status(ctx, userID, month)
}

func (s *stubPaymentService) TotalAmountPaid(context.Context, int64) (float64, error) {
	return 0, nil
}

func (s *stubPaymentService) FindPayments(context.Context, int64, string) ([]*models.PaymentWithCustomer, error) {
	return []*models.PaymentWithCustomer{}, nil
}

func (s *stubPaymentService) PaymentsByMonth(context.Context, string) (*models.MonthReport, error) {
	return &models.MonthReport{}, nil
}

func (s *stubPaymentService) PendingTransactions(context.Context) ([]*models.Transaction, error) {
	return []*models.Transaction{}, nil
}

type stubAuthService struct {
	login func(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}

var _ services.AuthService = (*stubAuthService)(nil)

func (s *stubAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	return s.login(ctx, req)
}

type stubNotificationService struct {
	list func(ctx context.Context, userID int64) ([]*models.Notification, error)
}

var _ services.NotificationService = (*stubNotificationService)(nil)

func (s *stubNotificationService) Notify(context.Context, int64, string, i18n.Key, map[string]string) {}

func (s *stubNotificationService) GetNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.list(ctx, userID)
}
