package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func orderRowColumns() []string {
	return []string{"id", "user_id", "items", "billing_address", "delivery_address", "delivery_method", "payment_method",
		"subtotal_cents", "tax_cents", "delivery_cents", "discount_cents", "total_cents", "applied_coupon", "status", "created_on", "updated_on"}
}

func sampleOrderItems(t *testing.T) []byte {
	t.Helper()
	items, err := json.Marshal([]domain.OrderItem{
		{ProductID: 7, ProductName: "Pressure Washer", UnitPriceCents: 100, Quantity: 2, DurationDays: 2, SubtotalCents: 400},
	})
	require.NoError(t, err)
	return items
}

func TestOrderRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	order := &domain.Order{
		UserID:         1,
		Items:          []domain.OrderItem{{ProductID: 7, Quantity: 2}},
		BillingAddress: "1 Main St",
		DeliveryMethod: "pickup",
		PaymentMethod:  "card",
		SubtotalCents:  400,
		TaxCents:       40,
		TotalCents:     440,
		Status:         domain.OrderStatusPending,
	}

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(order.UserID, sqlmock.AnyArg(), order.BillingAddress, order.DeliveryAddress, order.DeliveryMethod, order.PaymentMethod,
			order.SubtotalCents, order.TaxCents, order.DeliveryCents, order.DiscountCents, order.TotalCents, order.AppliedCoupon,
			order.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	require.NoError(t, repo.Create(context.Background(), order))
	assert.Equal(t, int64(42), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns()).
			AddRow(42, 1, sampleOrderItems(t), "1 Main St", "", "pickup", "card", 400, 40, 0, 0, 440, "", "pending", now, now))

	order, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pressure Washer", order.Items[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	t.Run("Updates an existing order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepository(db)

		mock.ExpectExec(`UPDATE orders SET status=\$1`).
			WithArgs(domain.OrderStatusConfirmed, sqlmock.AnyArg(), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), 42, domain.OrderStatusConfirmed))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing order maps to sql.ErrNoRows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepository(db)

		mock.ExpectExec(`UPDATE orders SET status=\$1`).
			WithArgs(domain.OrderStatusConfirmed, sqlmock.AnyArg(), int64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 999, domain.OrderStatusConfirmed), sql.ErrNoRows)
	})
}

func TestOrderRepositoryListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM orders WHERE user_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE user_id = \$1 ORDER BY created_on DESC`).
		WithArgs(int64(1), 20, 0).
		WillReturnRows(sqlmock.NewRows(orderRowColumns()).
			AddRow(42, 1, sampleOrderItems(t), "1 Main St", "", "pickup", "card", 400, 40, 0, 0, 440, "", "pending", now, now))

	orders, total, err := repo.ListByUser(context.Background(), 1, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryListStale(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	now := time.Now()
	cutoff := now.Add(-48 * time.Hour)

	mock.ExpectQuery(`SELECT .+ FROM orders WHERE status = \$1 AND created_on < \$2`).
		WithArgs(domain.OrderStatusPending, cutoff).
		WillReturnRows(sqlmock.NewRows(orderRowColumns()).
			AddRow(42, 1, sampleOrderItems(t), "1 Main St", "", "pickup", "card", 400, 40, 0, 0, 440, "", "pending", now.Add(-72*time.Hour), now))

	orders, err := repo.ListStale(context.Background(), domain.OrderStatusPending, cutoff)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
