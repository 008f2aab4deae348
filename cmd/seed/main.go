package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/config"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository/postgres"
)

// Seeds a development database with a demo vendor, a demo customer, and a
// handful of rentable products.
func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	vendor := seedUser(ctx, store, "Demo Vendor", "vendor@renteasy.dev", "vendor123", domain.UserRoleVendor)
	seedUser(ctx, store, "Demo Customer", "customer@renteasy.dev", "customer123", domain.UserRoleCustomer)

	products := []domain.Product{
		{
			Name:        "Canon EOS R5 Camera",
			Description: "45MP full-frame mirrorless camera with RF 24-105mm lens.",
			PricingRules: []domain.PricingRule{
				{PricingType: domain.PricingTypeDaily, BasePriceCents: 7500, IsActive: true},
				{PricingType: domain.PricingTypeWeekly, BasePriceCents: 40000, IsActive: true},
			},
			Inventory:             domain.Inventory{Available: 3},
			ReplacementValueCents: 380000,
		},
		{
			Name:        "Makita Circular Saw",
			Description: "7-1/4 inch circular saw, corded, with two blades.",
			PricingRules: []domain.PricingRule{
				{PricingType: domain.PricingTypeDaily, BasePriceCents: 1500, IsActive: true},
			},
			Inventory:             domain.Inventory{Available: 8},
			ReplacementValueCents: 18000,
		},
		{
			Name:        "Party Tent 6x3m",
			Description: "Waterproof event tent with sidewalls, seats 20.",
			PricingRules: []domain.PricingRule{
				{PricingType: domain.PricingTypeDaily, BasePriceCents: 4000, IsActive: true},
				{PricingType: domain.PricingTypeMonthly, BasePriceCents: 60000, IsActive: false},
			},
			Inventory:             domain.Inventory{Available: 2},
			ReplacementValueCents: 95000,
		},
	}

	for idx := range products {
		products[idx].VendorID = vendor.ID
		if err := store.ProductRepository.Create(ctx, &products[idx]); err != nil {
			logger.Error("Failed to seed product", "name", products[idx].Name, "error", err)
			continue
		}
		logger.Info("Seeded product", "id", products[idx].ID, "name", products[idx].Name)
	}

	logger.Info("Seeding complete")
}

func seedUser(ctx context.Context, store *postgres.Store, name, email, password string, role domain.UserRole) *domain.User {
	if existing, err := store.UserRepository.GetByEmail(ctx, email); err == nil {
		logger.Info("User already seeded", "email", email)
		return existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := store.UserRepository.Create(ctx, user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", email, err)
	}
	logger.Info("Seeded user", "id", user.ID, "email", email, "role", role)
	return user
}
