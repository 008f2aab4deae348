package service

import (
	"context"
	"fmt"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

// rentalOrderService drives the vendor quotation workflow. All stage and
// pricing invariants live on domain.RentalOrder; this layer loads, applies
// one transition and persists, so the guards hold regardless of the client.
type rentalOrderService struct {
	rentalOrderRepo repository.RentalOrderRepository
	productRepo     repository.ProductRepository
	emailSvc        EmailService
}

func NewRentalOrderService(
	rentalOrderRepo repository.RentalOrderRepository,
	productRepo repository.ProductRepository,
	emailSvc EmailService,
) RentalOrderService {
	return &rentalOrderService{
		rentalOrderRepo: rentalOrderRepo,
		productRepo:     productRepo,
		emailSvc:        emailSvc,
	}
}

func (s *rentalOrderService) CreateQuotation(ctx context.Context, vendorID int64, customerName, customerEmail string, lines []QuotationLine) (*domain.RentalOrder, error) {
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	orderLines, err := s.resolveLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewRentalOrder(vendorID, customerName, customerEmail, orderLines)
	if err != nil {
		return nil, err
	}
	if err := s.rentalOrderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *rentalOrderService) GetRentalOrder(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error) {
	return s.load(ctx, vendorID, id)
}

func (s *rentalOrderService) ListRentalOrders(ctx context.Context, vendorID int64, page, pageSize int) ([]domain.RentalOrder, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rentalOrderRepo.ListByVendor(ctx, vendorID, page, pageSize)
}

func (s *rentalOrderService) AddLine(ctx context.Context, vendorID int64, id string, line QuotationLine) (*domain.RentalOrder, error) {
	orderLines, err := s.resolveLines(ctx, []QuotationLine{line})
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.AddLine(orderLines[0])
	})
}

func (s *rentalOrderService) RemoveLine(ctx context.Context, vendorID int64, id string, index int) (*domain.RentalOrder, error) {
	return s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.RemoveLine(index)
	})
}

func (s *rentalOrderService) UpdateLineQuantity(ctx context.Context, vendorID int64, id string, index, quantity int) (*domain.RentalOrder, error) {
	return s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.UpdateLineQuantity(index, quantity)
	})
}

func (s *rentalOrderService) UpdatePrices(ctx context.Context, vendorID int64, id, priceListKey string) (*domain.RentalOrder, error) {
	return s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.UpdatePrices(priceListKey)
	})
}

func (s *rentalOrderService) SendQuotation(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error) {
	order, err := s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.Send()
	})
	if err != nil {
		return nil, err
	}

	if order.CustomerEmail != "" {
		if err := s.emailSvc.SendQuotation(ctx, order.CustomerEmail, order.CustomerName, order.ID, order.TotalCents); err != nil {
			logger.ErrorContext(ctx, "Failed to email quotation", "rental_order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

func (s *rentalOrderService) ConfirmQuotation(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error) {
	return s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.Confirm()
	})
}

func (s *rentalOrderService) CancelRentalOrder(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error) {
	return s.apply(ctx, vendorID, id, func(ro *domain.RentalOrder) error {
		return ro.Cancel()
	})
}

func (s *rentalOrderService) load(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error) {
	order, err := s.rentalOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.VendorID != vendorID {
		return nil, ErrUnauthorized
	}
	return order, nil
}

func (s *rentalOrderService) apply(ctx context.Context, vendorID int64, id string, fn func(*domain.RentalOrder) error) (*domain.RentalOrder, error) {
	order, err := s.load(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if err := fn(order); err != nil {
		return nil, err
	}
	if err := s.rentalOrderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// resolveLines turns requested product/quantity pairs into order lines with
// catalog-resolved names and unit prices.
func (s *rentalOrderService) resolveLines(ctx context.Context, lines []QuotationLine) ([]domain.OrderLine, error) {
	if len(lines) == 0 {
		return nil, domain.ErrNoOrderLines
	}

	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := s.productRepo.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		orderLines = append(orderLines, domain.OrderLine{
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: product.UnitPriceCents(),
		})
	}
	return orderLines, nil
}
