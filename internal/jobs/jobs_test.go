package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/config"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *mockOrderRepo) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}
func (m *mockOrderRepo) List(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}
func (m *mockOrderRepo) ListStale(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, status, cutoff)
	return args.Get(0).([]domain.Order), args.Error(1)
}

type mockRentalOrderRepo struct{ mock.Mock }

func (m *mockRentalOrderRepo) Create(ctx context.Context, order *domain.RentalOrder) error {
	return m.Called(ctx, order).Error(0)
}
func (m *mockRentalOrderRepo) GetByID(ctx context.Context, id string) (*domain.RentalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalOrder), args.Error(1)
}
func (m *mockRentalOrderRepo) Update(ctx context.Context, order *domain.RentalOrder) error {
	return m.Called(ctx, order).Error(0)
}
func (m *mockRentalOrderRepo) ListByVendor(ctx context.Context, vendorID int64, page, pageSize int) ([]domain.RentalOrder, int64, error) {
	args := m.Called(ctx, vendorID, page, pageSize)
	return args.Get(0).([]domain.RentalOrder), args.Get(1).(int64), args.Error(2)
}
func (m *mockRentalOrderRepo) ListSentBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}

type mockEmailService struct{ mock.Mock }

func (m *mockEmailService) SendOrderConfirmation(ctx context.Context, email, name string, orderID int64, totalCents int64) error {
	return m.Called(ctx, email, name, orderID, totalCents).Error(0)
}
func (m *mockEmailService) SendOrderStatusUpdate(ctx context.Context, email, name string, orderID int64, status domain.OrderStatus) error {
	return m.Called(ctx, email, name, orderID, status).Error(0)
}
func (m *mockEmailService) SendQuotation(ctx context.Context, email, customerName, quotationID string, totalCents int64) error {
	return m.Called(ctx, email, customerName, quotationID, totalCents).Error(0)
}
func (m *mockEmailService) SendPendingOrderReminder(ctx context.Context, email string, orderID int64, pendingSince time.Time) error {
	return m.Called(ctx, email, orderID, pendingSince).Error(0)
}

func jobConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.QuotationTTLDays = 14
	cfg.Scheduler.PendingReminderHours = 48
	return cfg
}

func TestExpireStaleQuotations(t *testing.T) {
	t.Run("Cancels and persists each stale quotation", func(t *testing.T) {
		rentalOrders := new(mockRentalOrderRepo)
		runner := NewJobRunner(new(mockUserRepo), new(mockOrderRepo), rentalOrders, new(mockEmailService), jobConfig())

		stale, err := domain.NewRentalOrder(5, "Acme", "a@b.c", []domain.OrderLine{
			{ProductID: 10, Quantity: 1, UnitPriceCents: 100},
		})
		require.NoError(t, err)
		require.NoError(t, stale.Send())

		rentalOrders.On("ListSentBefore", mock.Anything, mock.Anything).Return([]domain.RentalOrder{*stale}, nil)
		rentalOrders.On("Update", mock.Anything, mock.MatchedBy(func(ro *domain.RentalOrder) bool {
			return ro.Stage == domain.StageCancelled
		})).Return(nil)

		runner.ExpireStaleQuotations()
		rentalOrders.AssertExpectations(t)
	})

	t.Run("List failure aborts without updates", func(t *testing.T) {
		rentalOrders := new(mockRentalOrderRepo)
		runner := NewJobRunner(new(mockUserRepo), new(mockOrderRepo), rentalOrders, new(mockEmailService), jobConfig())

		rentalOrders.On("ListSentBefore", mock.Anything, mock.Anything).Return([]domain.RentalOrder(nil), assert.AnError)

		runner.ExpireStaleQuotations()
		rentalOrders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestSendPendingOrderReminders(t *testing.T) {
	t.Run("Emails the owner of each stale pending order", func(t *testing.T) {
		users := new(mockUserRepo)
		orders := new(mockOrderRepo)
		email := new(mockEmailService)
		runner := NewJobRunner(users, orders, new(mockRentalOrderRepo), email, jobConfig())

		placed := time.Now().Add(-72 * time.Hour)
		orders.On("ListStale", mock.Anything, domain.OrderStatusPending, mock.Anything).
			Return([]domain.Order{{ID: 42, UserID: 1, Status: domain.OrderStatusPending, CreatedOn: placed}}, nil)
		users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Email: "c@x.y"}, nil)
		email.On("SendPendingOrderReminder", mock.Anything, "c@x.y", int64(42), placed).Return(nil)

		runner.SendPendingOrderReminders()
		email.AssertExpectations(t)
	})

	t.Run("Unresolvable owner skips the order", func(t *testing.T) {
		users := new(mockUserRepo)
		orders := new(mockOrderRepo)
		email := new(mockEmailService)
		runner := NewJobRunner(users, orders, new(mockRentalOrderRepo), email, jobConfig())

		orders.On("ListStale", mock.Anything, domain.OrderStatusPending, mock.Anything).
			Return([]domain.Order{{ID: 42, UserID: 1}}, nil)
		users.On("GetByID", mock.Anything, int64(1)).Return(nil, assert.AnError)

		runner.SendPendingOrderReminders()
		email.AssertNotCalled(t, "SendPendingOrderReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
