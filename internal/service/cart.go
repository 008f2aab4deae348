package service

import (
	"context"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

// cartService loads a cart from the store, applies one mutation through the
// domain type, and writes the cart back. Totals are never persisted, so a
// replayed mutation after a crash converges to the same cart contents.
type cartService struct {
	carts       repository.CartStore
	productRepo repository.ProductRepository
}

func NewCartService(carts repository.CartStore, productRepo repository.ProductRepository) CartService {
	return &cartService{
		carts:       carts,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	return s.carts.Get(ctx, userID)
}

func (s *cartService) AddItem(ctx context.Context, userID, productID int64, quantity int, start, end time.Time) (*domain.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := cart.AddItem(product, quantity, start, end); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		return cart.UpdateQuantity(itemID, quantity)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, userID int64, itemID string) (*domain.Cart, error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		return cart.RemoveItem(itemID)
	})
}

func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	return s.carts.Delete(ctx, userID)
}

func (s *cartService) ApplyCoupon(ctx context.Context, userID int64, code string) (*domain.Cart, error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		_, err := cart.ApplyCoupon(code)
		return err
	})
}

func (s *cartService) RemoveCoupon(ctx context.Context, userID int64) (*domain.Cart, error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		cart.RemoveCoupon()
		return nil
	})
}

func (s *cartService) Summary(ctx context.Context, userID int64, deliveryMethod string) (domain.CartSummary, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return cart.Summary(deliveryMethod), nil
}

func (s *cartService) mutate(ctx context.Context, userID int64, fn func(*domain.Cart) error) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
