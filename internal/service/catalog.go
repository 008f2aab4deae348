package service

import (
	"context"
	"fmt"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) ListProducts(ctx context.Context, page, pageSize int) ([]domain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.productRepo.List(ctx, page, pageSize)
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *catalogService) AddProduct(ctx context.Context, vendorID int64, product *domain.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if len(product.PricingRules) == 0 {
		return fmt.Errorf("%w: at least one pricing rule is required", ErrValidation)
	}
	if product.UnitPriceCents() <= 0 {
		return fmt.Errorf("%w: an active pricing rule with a positive price is required", ErrValidation)
	}
	product.VendorID = vendorID
	return s.productRepo.Create(ctx, product)
}
