package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
)

func samplePricingRules(t *testing.T) []byte {
	t.Helper()
	rules, err := json.Marshal([]domain.PricingRule{
		{PricingType: domain.PricingTypeDaily, BasePriceCents: 100, IsActive: true},
		{PricingType: domain.PricingTypeWeekly, BasePriceCents: 500, IsActive: false},
	})
	require.NoError(t, err)
	return rules
}

func TestProductRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	product := &domain.Product{
		VendorID: 5,
		Name:     "Pressure Washer",
		PricingRules: []domain.PricingRule{
			{PricingType: domain.PricingTypeDaily, BasePriceCents: 100, IsActive: true},
		},
		Inventory: domain.Inventory{Available: 5},
	}

	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs(product.VendorID, product.Name, product.Description, sqlmock.AnyArg(), product.Inventory.Available,
			product.ReplacementValueCents, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Create(context.Background(), product))
	assert.Equal(t, int64(7), product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vendor_id", "name", "description", "pricing_rules", "available", "replacement_value_cents", "created_on"}).
			AddRow(7, 5, "Pressure Washer", "", samplePricingRules(t), 5, 18000, time.Now()))

	product, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Pressure Washer", product.Name)
	require.Len(t, product.PricingRules, 2)
	// Only the active daily rule participates in price resolution.
	assert.Equal(t, int64(100), product.UnitPriceCents())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT .+ FROM products ORDER BY id`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vendor_id", "name", "description", "pricing_rules", "available", "replacement_value_cents", "created_on"}).
			AddRow(7, 5, "Pressure Washer", "", samplePricingRules(t), 5, 18000, time.Now()).
			AddRow(8, 5, "Party Tent", "Seats 20", samplePricingRules(t), 2, 95000, time.Now()))

	products, total, err := repo.List(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
