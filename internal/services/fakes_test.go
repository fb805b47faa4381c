package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repositories mirroring the MongoDB behavior the services rely on:
// mongo.ErrNoDocuments on point-query misses and duplicate-key write errors
// carrying the violated index name.

func dupKeyErr(index string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: test index: " + index + " dup key",
	}}}
}

// --- users ---

type fakeUserRepo struct {
	users map[int64]*models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; ok {
		return dupKeyErr("_id_")
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindActiveByIDAndPhone(_ context.Context, id int64, phone string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok || user.IsDeleted || user.Phone != phone {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindActive(_ context.Context) ([]*models.User, error) {
	return r.sorted(func(u *models.User) bool { return !u.IsDeleted }), nil
}

func (r *fakeUserRepo) FindDeleted(_ context.Context) ([]*models.User, error) {
	return r.sorted(func(u *models.User) bool { return u.IsDeleted }), nil
}

func (r *fakeUserRepo) Search(_ context.Context, name, category, village string) ([]*models.User, error) {
	match := func(value, query string) bool {
		return query == "" || strings.Contains(strings.ToLower(value), strings.ToLower(query))
	}
	return r.sorted(func(u *models.User) bool {
		return !u.IsDeleted && match(u.Name, name) && match(u.Category, category) && match(u.Village, village)
	}), nil
}

func (r *fakeUserRepo) FindActiveByVillage(_ context.Context, village string) ([]*models.User, error) {
	return r.sorted(func(u *models.User) bool { return !u.IsDeleted && u.Village == village }), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) sorted(keep func(*models.User) bool) []*models.User {
	out := []*models.User{}
	for _, user := range r.users {
		if keep(user) {
			copied := *user
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- payments ---

type fakePaymentRepo struct {
	payments []*models.Payment
	users    *fakeUserRepo // for the customer-name join
}

var _ repositories.PaymentRepository = (*fakePaymentRepo)(nil)

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	for _, existing := range r.payments {
		if existing.UserID == payment.UserID && existing.Month == payment.Month {
			return dupKeyErr("userId_1_month_1")
		}
	}
	copied := *payment
	r.payments = append(r.payments, &copied)
	return nil
}

func (r *fakePaymentRepo) FindByUserAndMonth(_ context.Context, userID int64, month string) (*models.Payment, error) {
	for _, payment := range r.payments {
		if payment.UserID == userID && payment.Month == month {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakePaymentRepo) FindForUser(_ context.Context, userID int64, month string) ([]*models.PaymentWithCustomer, error) {
	out := []*models.PaymentWithCustomer{}
	for _, payment := range r.payments {
		if payment.UserID != userID || (month != "" && payment.Month != month) {
			continue
		}
		row := &models.PaymentWithCustomer{
			ID:     payment.ID,
			UserID: payment.UserID,
			Month:  payment.Month,
			Amount: payment.Amount,
		}
		if r.users != nil {
			if user, ok := r.users.users[userID]; ok {
				row.Name = user.Name
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakePaymentRepo) FindByMonth(_ context.Context, month string) ([]*models.Payment, error) {
	out := []*models.Payment{}
	for _, payment := range r.payments {
		if payment.Month == month {
			copied := *payment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) CountByUsers(_ context.Context, userIDs []int64) (map[int64]int64, error) {
	wanted := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}
	counts := make(map[int64]int64)
	for _, payment := range r.payments {
		if wanted[payment.UserID] {
			counts[payment.UserID]++
		}
	}
	return counts, nil
}

func (r *fakePaymentRepo) TotalAmountByUser(_ context.Context, userID int64) (float64, error) {
	var total float64
	for _, payment := range r.payments {
		if payment.UserID == userID {
			total += payment.Amount
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) FindLatestByUser(_ context.Context, userID int64) (*models.Payment, error) {
	var latest *models.Payment
	for _, payment := range r.payments {
		if payment.UserID == userID && (latest == nil || payment.Date.After(latest.Date)) {
			latest = payment
		}
	}
	if latest == nil {
		return nil, mongo.ErrNoDocuments
	}
	copied := *latest
	return &copied, nil
}

func (r *fakePaymentRepo) DeleteByUser(_ context.Context, userID int64) error {
	kept := r.payments[:0]
	for _, payment := range r.payments {
		if payment.UserID != userID {
			kept = append(kept, payment)
		}
	}
	r.payments = kept
	return nil
}

// --- villages ---

type fakeVillageRepo struct {
	names map[string]bool
}

var _ repositories.VillageRepository = (*fakeVillageRepo)(nil)

func newFakeVillageRepo() *fakeVillageRepo {
	return &fakeVillageRepo{names: make(map[string]bool)}
}

func (r *fakeVillageRepo) EnsureExists(_ context.Context, name string) error {
	r.names[name] = true
	return nil
}

func (r *fakeVillageRepo) FindAll(_ context.Context) ([]*models.Village, error) {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*models.Village, len(names))
	for i, name := range names {
		out[i] = &models.Village{Name: name}
	}
	return out, nil
}

// --- notifications ---

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

var _ repositories.NotificationRepository = (*fakeNotificationRepo)(nil)

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) FindByUser(_ context.Context, userID int64) ([]*models.Notification, error) {
	out := []*models.Notification{}
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			copied := *notification
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNotificationRepo) DeleteByUser(_ context.Context, userID int64) error {
	kept := r.notifications[:0]
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			kept = append(kept, notification)
		}
	}
	r.notifications = kept
	return nil
}

// --- transactions ---

type fakeTransactionRepo struct {
	transactions []*models.Transaction
}

var _ repositories.TransactionRepository = (*fakeTransactionRepo)(nil)

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *models.Transaction) error {
	for _, existing := range r.transactions {
		if existing.TransactionID == transaction.TransactionID {
			return dupKeyErr("transactionId_1")
		}
		if existing.UserID == transaction.UserID && existing.Month == transaction.Month &&
			existing.Status == models.StatusPending && transaction.Status == models.StatusPending {
			return dupKeyErr("userId_1_month_1")
		}
	}
	copied := *transaction
	r.transactions = append(r.transactions, &copied)
	return nil
}

func (r *fakeTransactionRepo) FindByTransactionID(_ context.Context, transactionID string) (*models.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.TransactionID == transactionID {
			copied := *transaction
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTransactionRepo) FindPendingByUserAndMonth(_ context.Context, userID int64, month string) (*models.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.UserID == userID && transaction.Month == month && transaction.Status == models.StatusPending {
			copied := *transaction
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTransactionRepo) FindPending(_ context.Context) ([]*models.Transaction, error) {
	out := []*models.Transaction{}
	for _, transaction := range r.transactions {
		if transaction.Status == models.StatusPending {
			copied := *transaction
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) UpdateStatusIfPending(_ context.Context, transactionID, status string) (*models.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.TransactionID == transactionID && transaction.Status == models.StatusPending {
			transaction.Status = status
			copied := *transaction
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTransactionRepo) DeleteByUser(_ context.Context, userID int64) error {
	kept := r.transactions[:0]
	for _, transaction := range r.transactions {
		if transaction.UserID != userID {
			kept = append(kept, transaction)
		}
	}
	r.transactions = kept
	return nil
}
