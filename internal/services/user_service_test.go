package services

import (
	"context"
	"testing"
	"time"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	users         *fakeUserRepo
	payments      *fakePaymentRepo
	villages      *fakeVillageRepo
	transactions  *fakeTransactionRepo
	notifications *fakeNotificationRepo
	service       *UserServiceImpl
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	users := newFakeUserRepo()
	payments := &fakePaymentRepo{users: users}
	villages := newFakeVillageRepo()
	transactions := &fakeTransactionRepo{}
	notifications := &fakeNotificationRepo{}
	notificationService := NewNotificationService(notifications, i18n.NewCatalog(nil))
	return &userFixture{
		users:         users,
		payments:      payments,
		villages:      villages,
		transactions:  transactions,
		notifications: notifications,
		service: NewUserService(
			users, payments, villages, notifications, transactions, notificationService,
		),
	}
}

func TestCreateUser(t *testing.T) {
	f := newUserFixture(t)

	created, err := f.service.CreateUser(context.Background(), &models.User{
		ID:      1,
		Name:    "Ravi",
		Village: "Hosur",
		Phone:   "9876543210",
	}, "en")
	require.NoError(t, err)
	require.Equal(t, "en", created.Language)

	villages, err := f.villages.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, villages, 1)
	require.Equal(t, "Hosur", villages[0].Name)

	notes, err := f.notifications.FindByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Contains(t, notes[0].Message, "Ravi")
}

func TestCreateUserDuplicateID(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.service.CreateUser(context.Background(), &models.User{ID: 1, Name: "Ravi"}, "en")
	require.NoError(t, err)

	_, err = f.service.CreateUser(context.Background(), &models.User{ID: 1, Name: "Other"}, "en")
	require.ErrorIs(t, err, ErrUserIDExists)
}

func TestSoftDeleteRestoreFlow(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &models.User{ID: 1, Name: "Ravi"}, "en")
	require.NoError(t, err)

	require.NoError(t, f.service.SoftDeleteUser(ctx, 1))

	active, err := f.service.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, active)

	trash, err := f.service.GetDeletedUsers(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	require.NotNil(t, trash[0].DeletedAt)

	require.ErrorIs(t, f.service.SoftDeleteUser(ctx, 1), ErrUserAlreadyDeleted)

	restored, err := f.service.RestoreUser(ctx, 1)
	require.NoError(t, err)
	require.False(t, restored.IsDeleted)
	require.Nil(t, restored.DeletedAt)

	_, err = f.service.RestoreUser(ctx, 1)
	require.ErrorIs(t, err, ErrUserNotDeleted)
}

func TestPermanentDeleteUser(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &models.User{ID: 1, Name: "Ravi"}, "en")
	require.NoError(t, err)
	require.NoError(t, f.payments.Create(ctx, &models.Payment{UserID: 1, Month: "2024-01", Amount: 100}))
	require.NoError(t, f.transactions.Create(ctx, &models.Transaction{TransactionID: "TXN-1", UserID: 1, Month: "2024-02", Status: models.StatusPending}))

	// Only trashed users can be purged.
	require.ErrorIs(t, f.service.PermanentDeleteUser(ctx, 1), ErrUserNotInTrash)

	require.NoError(t, f.service.SoftDeleteUser(ctx, 1))
	require.NoError(t, f.service.PermanentDeleteUser(ctx, 1))

	_, err = f.service.GetUser(ctx, 1)
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Empty(t, f.payments.payments)
	require.Empty(t, f.transactions.transactions)
	require.Empty(t, f.notifications.notifications)
}

func TestSearchUsers(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &models.User{ID: 1, Name: "Ravi Kumar", Village: "Hosur", Category: "regular"}, "en")
	require.NoError(t, err)
	_, err = f.service.CreateUser(ctx, &models.User{ID: 2, Name: "Lakshmi", Village: "Denkanikottai", Category: "wholesale"}, "en")
	require.NoError(t, err)

	found, err := f.service.SearchUsers(ctx, "ravi", "", "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, int64(1), found[0].ID)

	found, err = f.service.SearchUsers(ctx, "", "wholesale", "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, int64(2), found[0].ID)
}

func TestSearchByVillagePaymentCounts(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &models.User{ID: 1, Name: "Ravi", Village: "Hosur"}, "en")
	require.NoError(t, err)
	_, err = f.service.CreateUser(ctx, &models.User{ID: 2, Name: "Lakshmi", Village: "Hosur"}, "en")
	require.NoError(t, err)
	require.NoError(t, f.payments.Create(ctx, &models.Payment{UserID: 1, Month: "2024-01", Amount: 100}))
	require.NoError(t, f.payments.Create(ctx, &models.Payment{UserID: 1, Month: "2024-02", Amount: 100}))

	result, err := f.service.SearchByVillage(ctx, "Hosur")
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, int64(2), result[0].PaymentCount)
	require.Equal(t, int64(0), result[1].PaymentCount)
}

func TestUpdateLanguageAndRegisterDevice(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &models.User{ID: 1, Name: "Ravi"}, "en")
	require.NoError(t, err)

	require.NoError(t, f.service.UpdateLanguage(ctx, 1, "ta"))
	require.NoError(t, f.service.RegisterDevice(ctx, 1, "device-token-1"))

	user, err := f.service.GetUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "ta", user.Language)
	require.Equal(t, "device-token-1", user.DeviceToken)

	require.ErrorIs(t, f.service.UpdateLanguage(ctx, 99, "ta"), ErrUserNotFound)
}

func TestInactiveCustomers(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &models.User{ID: 1, Name: "Stale"}, "en")
	require.NoError(t, err)
	_, err = f.service.CreateUser(ctx, &models.User{ID: 2, Name: "Fresh"}, "en")
	require.NoError(t, err)
	_, err = f.service.CreateUser(ctx, &models.User{ID: 3, Name: "Never"}, "en")
	require.NoError(t, err)

	require.NoError(t, f.payments.Create(ctx, &models.Payment{
		UserID: 1, Month: "2024-01", Amount: 100, Date: time.Now().AddDate(0, -4, 0),
	}))
	require.NoError(t, f.payments.Create(ctx, &models.Payment{
		UserID: 2, Month: "2024-05", Amount: 100, Date: time.Now().AddDate(0, 0, -10),
	}))

	inactive, err := f.service.InactiveCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, inactive, 2)
	require.Equal(t, int64(1), inactive[0].UserID)
	require.Equal(t, "2024-01", inactive[0].LastPaymentMonth)
	require.Equal(t, 100.0, inactive[0].LastPaymentAmount)
	require.Equal(t, int64(3), inactive[1].UserID)
	require.Equal(t, "Never", inactive[1].LastPaymentMonth)
}
