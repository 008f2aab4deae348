package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, user_id, items, billing_address, delivery_address, delivery_method, payment_method,
	subtotal_cents, tax_cents, delivery_cents, discount_cents, total_cents, COALESCE(applied_coupon, ''), status, created_on, updated_on`

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	query := `INSERT INTO orders (user_id, items, billing_address, delivery_address, delivery_method, payment_method,
	          subtotal_cents, tax_cents, delivery_cents, discount_cents, total_cents, applied_coupon, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query, o.UserID, items, o.BillingAddress, o.DeliveryAddress, o.DeliveryMethod, o.PaymentMethod,
		o.SubtotalCents, o.TaxCents, o.DeliveryCents, o.DiscountCents, o.TotalCents, o.AppliedCoupon, o.Status, time.Now(), time.Now()).Scan(&o.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `UPDATE orders SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]domain.Order, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM orders WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	return orders, count, err
}

func (r *orderRepository) List(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	countQuery := `SELECT count(*) FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	return orders, count, err
}

func (r *orderRepository) ListStale(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 AND created_on < $2 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, status, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{}
	var items []byte
	err := row.Scan(&o.ID, &o.UserID, &items, &o.BillingAddress, &o.DeliveryAddress, &o.DeliveryMethod, &o.PaymentMethod,
		&o.SubtotalCents, &o.TaxCents, &o.DeliveryCents, &o.DiscountCents, &o.TotalCents, &o.AppliedCoupon, &o.Status, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return o, nil
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}
