package repository

import (
	"context"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Product, int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]domain.Order, int64, error)
	List(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error)
	ListStale(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error)
}

type RentalOrderRepository interface {
	Create(ctx context.Context, order *domain.RentalOrder) error
	GetByID(ctx context.Context, id string) (*domain.RentalOrder, error)
	Update(ctx context.Context, order *domain.RentalOrder) error
	ListByVendor(ctx context.Context, vendorID int64, page, pageSize int) ([]domain.RentalOrder, int64, error)
	ListSentBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalOrder, error)
}

// CartStore persists carts keyed by user. Get returns a fresh empty cart
// when none is stored.
type CartStore interface {
	Get(ctx context.Context, userID int64) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, userID int64) error
}
