package service

import (
	"context"
	"fmt"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/events"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/pricing"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

type checkoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	carts       repository.CartStore
	publisher   events.Publisher
	emailSvc    EmailService
	strict      bool
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	carts repository.CartStore,
	publisher events.Publisher,
	emailSvc EmailService,
	strictValidation bool,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		carts:       carts,
		publisher:   publisher,
		emailSvc:    emailSvc,
		strict:      strictValidation,
	}
}

// PlaceOrder builds an order from the submitted items, recomputing the full
// money breakdown server-side. Any totals the client sent are ignored.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID int64, input CheckoutInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	var (
		items    []domain.OrderItem
		subtotal int64
	)
	for _, it := range input.Items {
		if it.RentalStart.IsZero() || it.RentalEnd.IsZero() {
			return nil, domain.ErrMissingRentalDates
		}
		if it.RentalEnd.Before(it.RentalStart) {
			return nil, domain.ErrInvalidRentalRange
		}
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		product, err := s.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Inventory.Available < it.Quantity {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		days := pricing.RentalDays(it.RentalStart, it.RentalEnd)
		unitPrice := product.UnitPriceCents()
		lineSubtotal := pricing.LineSubtotal(unitPrice, it.Quantity, days)
		subtotal += lineSubtotal

		items = append(items, domain.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			UnitPriceCents: unitPrice,
			Quantity:       it.Quantity,
			RentalStart:    it.RentalStart,
			RentalEnd:      it.RentalEnd,
			DurationDays:   days,
			SubtotalCents:  lineSubtotal,
		})
	}

	tax := pricing.Tax(subtotal)
	delivery := pricing.DeliveryCharge(input.DeliveryMethod, subtotal)

	var discount int64
	var appliedCoupon string
	if input.CouponCode != "" {
		coupon, err := pricing.LookupCoupon(input.CouponCode)
		if err != nil {
			return nil, err
		}
		discount = coupon.DiscountFor(subtotal)
		appliedCoupon = coupon.Code
	}

	order := &domain.Order{
		UserID:          userID,
		Items:           items,
		BillingAddress:  input.BillingAddress,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryMethod:  input.DeliveryMethod,
		PaymentMethod:   input.PaymentMethod,
		SubtotalCents:   subtotal,
		TaxCents:        tax,
		DeliveryCents:   delivery,
		DiscountCents:   discount,
		TotalCents:      pricing.Payable(subtotal, tax, delivery, discount),
		AppliedCoupon:   appliedCoupon,
		Status:          domain.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// The order is durable at this point. Event publishing, cart cleanup
	// and the confirmation email are fire-and-forget.
	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		logger.ErrorContext(ctx, "Failed to publish order placed event", "order_id", order.ID, "error", err)
	}
	if err := s.carts.Delete(ctx, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to clear cart after checkout", "user_id", userID, "error", err)
	}
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		if err := s.emailSvc.SendOrderConfirmation(ctx, user.Email, user.Name, order.ID, order.TotalCents); err != nil {
			logger.ErrorContext(ctx, "Failed to send order confirmation", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

func (s *checkoutService) validate(input CheckoutInput) error {
	if !s.strict {
		return nil
	}
	if input.BillingAddress == "" {
		return fmt.Errorf("%w: billing address is required", ErrValidation)
	}
	if input.PaymentMethod == "" {
		return fmt.Errorf("%w: payment method is required", ErrValidation)
	}
	if input.DeliveryMethod == pricing.DeliveryMethodHomeDelivery && input.DeliveryAddress == "" {
		return fmt.Errorf("%w: delivery address is required for home delivery", ErrValidation)
	}
	return nil
}
