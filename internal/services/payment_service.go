package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PaymentServiceImpl implements PaymentService
var _ PaymentService = (*PaymentServiceImpl)(nil)

// PaymentServiceImpl coordinates the ledger, the payment-request workflow and
// its notification side effects.
//
// The three writes of an approval (status flip, ledger insert, notification)
// are not one transaction. The status flip goes first because it is the
// idempotency guard: a crash afterwards leaves an approved request without a
// ledger entry, which an admin can re-record, but never a double charge.
type PaymentServiceImpl struct {
	userRepo        repositories.UserRepository
	paymentRepo     repositories.PaymentRepository
	transactionRepo repositories.TransactionRepository
	notifications   NotificationService
}

// NewPaymentService creates a new PaymentServiceImpl
func NewPaymentService(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	transactionRepo repositories.TransactionRepository,
	notifications NotificationService,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		userRepo:        userRepo,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		notifications:   notifications,
	}
}

// RecordPayment writes a ledger entry for a cash payment taken by the admin
// and notifies the customer.
func (s *PaymentServiceImpl) RecordPayment(ctx context.Context, userID int64, month string, amount float64) (*models.Payment, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID: userID,
		Date:   time.Now(),
		Month:  month,
		Amount: amount,
		Status: models.StatusApproved,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrPaymentExists
		}
		return nil, err
	}

	s.notifications.Notify(ctx, userID, user.Language, i18n.KeyPaymentRecorded, map[string]string{
		"amount": formatAmount(amount),
		"month":  month,
	})

	slog.Info("payment recorded", "userId", userID, "month", month, "amount", amount)
	return payment, nil
}

// RequestPayment files a pending payment request for a (user, month) pair.
// It refuses when the month is already paid, a request is already pending, or
// the transaction id was seen before. The unique indexes catch the races the
// sequential checks cannot.
func (s *PaymentServiceImpl) RequestPayment(ctx context.Context, userID int64, month string, amount float64, transactionID, requestLang string) (*models.Transaction, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted {
		return nil, ErrUserDeleted
	}

	if _, err := s.paymentRepo.FindByUserAndMonth(ctx, userID, month); err == nil {
		return nil, ErrPaymentExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if _, err := s.transactionRepo.FindPendingByUserAndMonth(ctx, userID, month); err == nil {
		return nil, ErrPendingPaymentExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if _, err := s.transactionRepo.FindByTransactionID(ctx, transactionID); err == nil {
		return nil, ErrTransactionIDExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	transaction := &models.Transaction{
		TransactionID: transactionID,
		UserID:        userID,
		Month:         month,
		Amount:        amount,
		Status:        models.StatusPending,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race past the checks above; the index name tells which.
			if strings.Contains(err.Error(), "transactionId") {
				return nil, ErrTransactionIDExists
			}
			return nil, ErrPendingPaymentExists
		}
		return nil, err
	}

	notifyLang := user.Language
	if notifyLang == "" {
		notifyLang = requestLang
	}
	s.notifications.Notify(ctx, userID, notifyLang, i18n.KeyPaymentRequestNotice, map[string]string{
		"amount": formatAmount(amount),
		"month":  month,
	})

	slog.Info("payment requested", "userId", userID, "month", month, "transactionId", transactionID)
	return transaction, nil
}

// ApprovePayment decides a pending request in the customer's favor: the
// request flips to approved, a ledger entry is written with the request's
// amount and month, and the customer is notified. Approving a decided
// request is a conflict, not a second payment.
func (s *PaymentServiceImpl) ApprovePayment(ctx context.Context, transactionID string) (*models.Payment, error) {
	transaction, err := s.decide(ctx, transactionID, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID:        transaction.UserID,
		Date:          time.Now(),
		Month:         transaction.Month,
		Amount:        transaction.Amount,
		TransactionID: transaction.TransactionID,
		Status:        models.StatusApproved,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			slog.Warn("approved request but the month already has a ledger entry",
				"userId", transaction.UserID, "month", transaction.Month, "transactionId", transactionID)
			return nil, ErrPaymentExists
		}
		return nil, err
	}

	s.notifyDecision(ctx, transaction, i18n.KeyPaymentApprovedNote)

	slog.Info("payment approved", "userId", transaction.UserID, "month", transaction.Month, "transactionId", transactionID)
	return payment, nil
}

// RejectPayment decides a pending request against the customer. No ledger
// entry is written.
func (s *PaymentServiceImpl) RejectPayment(ctx context.Context, transactionID string) (*models.Transaction, error) {
	transaction, err := s.decide(ctx, transactionID, models.StatusRejected)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, transaction, i18n.KeyPaymentRejectedNote)

	slog.Info("payment rejected", "userId", transaction.UserID, "month", transaction.Month, "transactionId", transactionID)
	return transaction, nil
}

// CheckPaymentStatus reports whether a (user, month) pair counts as paid.
// A pending request counts: it must block a second request before the admin
// has decided.
func (s *PaymentServiceImpl) CheckPaymentStatus(ctx context.Context, userID int64, month string) (*models.PaymentStatus, error) {
	hasApproved := false
	payment, err := s.paymentRepo.FindByUserAndMonth(ctx, userID, month)
	if err == nil {
		hasApproved = payment.Status == models.StatusApproved
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hasPending := false
	if _, err := s.transactionRepo.FindPendingByUserAndMonth(ctx, userID, month); err == nil {
		hasPending = true
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return &models.PaymentStatus{
		UserID:                userID,
		Month:                 month,
		IsPaid:                hasApproved || hasPending,
		HasApprovedPayment:    hasApproved,
		HasPendingTransaction: hasPending,
	}, nil
}

// TotalAmountPaid sums every ledger entry of a user
func (s *PaymentServiceImpl) TotalAmountPaid(ctx context.Context, userID int64) (float64, error) {
	return s.paymentRepo.TotalAmountByUser(ctx, userID)
}

// FindPayments lists a user's ledger entries, optionally narrowed to a month
func (s *PaymentServiceImpl) FindPayments(ctx context.Context, userID int64, month string) ([]*models.PaymentWithCustomer, error) {
	return s.paymentRepo.FindForUser(ctx, userID, month)
}

// PaymentsByMonth splits the active customers into paid and unpaid for a month
func (s *PaymentServiceImpl) PaymentsByMonth(ctx context.Context, month string) (*models.MonthReport, error) {
	users, err := s.userRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	paymentsByUser := make(map[int64]*models.Payment, len(payments))
	for _, payment := range payments {
		paymentsByUser[payment.UserID] = payment
	}

	report := &models.MonthReport{
		TotalCount:  len(users),
		PaidUsers:   []models.MonthEntry{},
		UnpaidUsers: []models.MonthEntry{},
	}
	for _, user := range users {
		entry := models.MonthEntry{
			UserID:   user.ID,
			Name:     user.Name,
			Village:  user.Village,
			Category: user.Category,
			Phone:    user.Phone,
		}
		if payment, ok := paymentsByUser[user.ID]; ok {
			entry.Amount = payment.Amount
			report.PaidUsers = append(report.PaidUsers, entry)
		} else {
			report.UnpaidUsers = append(report.UnpaidUsers, entry)
		}
	}
	report.PaidCount = len(report.PaidUsers)
	report.UnpaidCount = len(report.UnpaidUsers)
	return report, nil
}

// PendingTransactions lists every request awaiting a decision
func (s *PaymentServiceImpl) PendingTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return s.transactionRepo.FindPending(ctx)
}

// decide flips a pending transaction to status, disambiguating a no-match
// into not-found versus already-decided.
func (s *PaymentServiceImpl) decide(ctx context.Context, transactionID, status string) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.UpdateStatusIfPending(ctx, transactionID, status)
	if err == nil {
		return transaction, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if _, err := s.transactionRepo.FindByTransactionID(ctx, transactionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return nil, ErrTransactionDecided
}

func (s *PaymentServiceImpl) notifyDecision(ctx context.Context, transaction *models.Transaction, key i18n.Key) {
	lang := i18n.DefaultLang
	if user, err := s.userRepo.FindByID(ctx, transaction.UserID); err == nil && user.Language != "" {
		lang = user.Language
	}
	s.notifications.Notify(ctx, transaction.UserID, lang, key, map[string]string{
		"amount": formatAmount(transaction.Amount),
		"month":  transaction.Month,
	})
}

func (s *PaymentServiceImpl) findUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// formatAmount renders an amount the way the notification templates expect:
// no trailing zeros for whole rupee values.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
