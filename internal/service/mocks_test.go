package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) List(ctx context.Context, page, pageSize int) ([]domain.Product, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOrderRepo) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) List(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) ListStale(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, status, cutoff)
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockRentalOrderRepo
type MockRentalOrderRepo struct {
	mock.Mock
}

func (m *MockRentalOrderRepo) Create(ctx context.Context, order *domain.RentalOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockRentalOrderRepo) GetByID(ctx context.Context, id string) (*domain.RentalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalOrder), args.Error(1)
}
func (m *MockRentalOrderRepo) Update(ctx context.Context, order *domain.RentalOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockRentalOrderRepo) ListByVendor(ctx context.Context, vendorID int64, page, pageSize int) ([]domain.RentalOrder, int64, error) {
	args := m.Called(ctx, vendorID, page, pageSize)
	return args.Get(0).([]domain.RentalOrder), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalOrderRepo) ListSentBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}

// MockCartStore
type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}
func (m *MockCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}
func (m *MockCartStore) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderConfirmation(ctx context.Context, email, name string, orderID int64, totalCents int64) error {
	args := m.Called(ctx, email, name, orderID, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderStatusUpdate(ctx context.Context, email, name string, orderID int64, status domain.OrderStatus) error {
	args := m.Called(ctx, email, name, orderID, status)
	return args.Error(0)
}
func (m *MockEmailService) SendQuotation(ctx context.Context, email, customerName, quotationID string, totalCents int64) error {
	args := m.Called(ctx, email, customerName, quotationID, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingOrderReminder(ctx context.Context, email string, orderID int64, pendingSince time.Time) error {
	args := m.Called(ctx, email, orderID, pendingSince)
	return args.Error(0)
}
