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

type rentalOrderRepository struct {
	db *sql.DB
}

func NewRentalOrderRepository(db *sql.DB) repository.RentalOrderRepository {
	return &rentalOrderRepository{db: db}
}

const rentalOrderColumns = `id, vendor_id, customer_name, customer_email, stage, lines,
	untaxed_total_cents, tax_cents, total_cents, created_on, updated_on`

func (r *rentalOrderRepository) Create(ctx context.Context, ro *domain.RentalOrder) error {
	lines, err := json.Marshal(ro.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode order lines: %w", err)
	}
	query := `INSERT INTO rental_orders (id, vendor_id, customer_name, customer_email, stage, lines,
	          untaxed_total_cents, tax_cents, total_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecContext(ctx, query, ro.ID, ro.VendorID, ro.CustomerName, ro.CustomerEmail, ro.Stage, lines,
		ro.UntaxedTotalCents, ro.TaxCents, ro.TotalCents, time.Now(), time.Now())
	return err
}

func (r *rentalOrderRepository) GetByID(ctx context.Context, id string) (*domain.RentalOrder, error) {
	query := `SELECT ` + rentalOrderColumns + ` FROM rental_orders WHERE id = $1`
	return scanRentalOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalOrderRepository) Update(ctx context.Context, ro *domain.RentalOrder) error {
	lines, err := json.Marshal(ro.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode order lines: %w", err)
	}
	query := `UPDATE rental_orders SET stage=$1, lines=$2, untaxed_total_cents=$3, tax_cents=$4, total_cents=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, ro.Stage, lines, ro.UntaxedTotalCents, ro.TaxCents, ro.TotalCents, time.Now(), ro.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalOrderRepository) ListByVendor(ctx context.Context, vendorID int64, page, pageSize int) ([]domain.RentalOrder, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_orders WHERE vendor_id = $1`, vendorID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalOrderColumns + ` FROM rental_orders WHERE vendor_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, vendorID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := collectRentalOrders(rows)
	return orders, count, err
}

func (r *rentalOrderRepository) ListSentBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalOrder, error) {
	query := `SELECT ` + rentalOrderColumns + ` FROM rental_orders WHERE stage = $1 AND updated_on < $2 ORDER BY updated_on`
	rows, err := r.db.QueryContext(ctx, query, domain.StageQuotationSent, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentalOrders(rows)
}

func scanRentalOrder(row rowScanner) (*domain.RentalOrder, error) {
	ro := &domain.RentalOrder{}
	var lines []byte
	err := row.Scan(&ro.ID, &ro.VendorID, &ro.CustomerName, &ro.CustomerEmail, &ro.Stage, &lines,
		&ro.UntaxedTotalCents, &ro.TaxCents, &ro.TotalCents, &ro.CreatedOn, &ro.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &ro.Lines); err != nil {
		return nil, fmt.Errorf("failed to decode order lines: %w", err)
	}
	return ro, nil
}

func collectRentalOrders(rows *sql.Rows) ([]domain.RentalOrder, error) {
	var orders []domain.RentalOrder
	for rows.Next() {
		ro, err := scanRentalOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *ro)
	}
	return orders, rows.Err()
}
