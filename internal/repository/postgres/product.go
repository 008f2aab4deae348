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

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	rules, err := json.Marshal(p.PricingRules)
	if err != nil {
		return fmt.Errorf("failed to encode pricing rules: %w", err)
	}
	query := `INSERT INTO products (vendor_id, name, description, pricing_rules, available, replacement_value_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.VendorID, p.Name, p.Description, rules, p.Inventory.Available, p.ReplacementValueCents, time.Now()).Scan(&p.ID)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	var rules []byte
	query := `SELECT id, vendor_id, name, COALESCE(description, ''), pricing_rules, available, COALESCE(replacement_value_cents, 0), created_on
	          FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.VendorID, &p.Name, &p.Description, &rules, &p.Inventory.Available, &p.ReplacementValueCents, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rules, &p.PricingRules); err != nil {
		return nil, fmt.Errorf("failed to decode pricing rules: %w", err)
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context, page, pageSize int) ([]domain.Product, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, vendor_id, name, COALESCE(description, ''), pricing_rules, available, COALESCE(replacement_value_cents, 0), created_on
	          FROM products ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var rules []byte
		if err := rows.Scan(&p.ID, &p.VendorID, &p.Name, &p.Description, &rules, &p.Inventory.Available, &p.ReplacementValueCents, &p.CreatedOn); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(rules, &p.PricingRules); err != nil {
			return nil, 0, fmt.Errorf("failed to decode pricing rules: %w", err)
		}
		products = append(products, p)
	}
	return products, count, rows.Err()
}
