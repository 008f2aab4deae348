package service

import (
	"context"
	"errors"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrValidation         = errors.New("validation failed")
	ErrInsufficientStock  = errors.New("not enough units available")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context, page, pageSize int) ([]domain.Product, int64, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	AddProduct(ctx context.Context, vendorID int64, product *domain.Product) error
}

type CartService interface {
	GetCart(ctx context.Context, userID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int, start, end time.Time) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID int64, itemID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
	ApplyCoupon(ctx context.Context, userID int64, code string) (*domain.Cart, error)
	RemoveCoupon(ctx context.Context, userID int64) (*domain.Cart, error)
	Summary(ctx context.Context, userID int64, deliveryMethod string) (domain.CartSummary, error)
}

// CheckoutItem is one requested line at order placement. Prices are always
// resolved server-side from the catalog; client-supplied totals are ignored.
type CheckoutItem struct {
	ProductID   int64
	Quantity    int
	RentalStart time.Time
	RentalEnd   time.Time
}

// CheckoutInput carries everything a customer submits at checkout.
type CheckoutInput struct {
	Items           []CheckoutItem
	BillingAddress  string
	DeliveryAddress string
	DeliveryMethod  string
	PaymentMethod   string
	CouponCode      string
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, userID int64, input CheckoutInput) (*domain.Order, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error)
	ListMyOrders(ctx context.Context, userID int64, page, pageSize int) ([]domain.Order, int64, error)
	ChangeStatus(ctx context.Context, orderID int64, newStatus domain.OrderStatus) (*domain.Order, error)
}

// QuotationLine is one requested line when building a quotation.
type QuotationLine struct {
	ProductID int64
	Quantity  int
}

type RentalOrderService interface {
	CreateQuotation(ctx context.Context, vendorID int64, customerName, customerEmail string, lines []QuotationLine) (*domain.RentalOrder, error)
	GetRentalOrder(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error)
	ListRentalOrders(ctx context.Context, vendorID int64, page, pageSize int) ([]domain.RentalOrder, int64, error)
	AddLine(ctx context.Context, vendorID int64, id string, line QuotationLine) (*domain.RentalOrder, error)
	RemoveLine(ctx context.Context, vendorID int64, id string, index int) (*domain.RentalOrder, error)
	UpdateLineQuantity(ctx context.Context, vendorID int64, id string, index, quantity int) (*domain.RentalOrder, error)
	UpdatePrices(ctx context.Context, vendorID int64, id, priceListKey string) (*domain.RentalOrder, error)
	SendQuotation(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error)
	ConfirmQuotation(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error)
	CancelRentalOrder(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error)
}

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, email, name string, orderID int64, totalCents int64) error
	SendOrderStatusUpdate(ctx context.Context, email, name string, orderID int64, status domain.OrderStatus) error
	SendQuotation(ctx context.Context, email, customerName, quotationID string, totalCents int64) error
	SendPendingOrderReminder(ctx context.Context, email string, orderID int64, pendingSince time.Time) error
}
