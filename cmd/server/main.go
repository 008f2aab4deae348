package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "github.com/rajvichauhan/Rental-Management-sub000/internal/api/http"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/config"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/events"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository/postgres"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository/redisstore"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/security"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentEasy backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	carts, err := redisstore.NewCartStore(cfg.Redis.URL, time.Duration(cfg.Redis.CartTTLHours)*time.Hour)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer carts.Close()
	logger.Info("Redis connection established")

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			logger.Error("Failed to connect to rabbitmq", "error", err)
			log.Fatalf("Failed to connect to rabbitmq: %v", err)
		}
		publisher = amqpPublisher
		logger.Info("RabbitMQ connection established", "queue", cfg.RabbitMQ.Queue)
	}
	defer publisher.Close()

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)

	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	catalogSvc := service.NewCatalogService(store.ProductRepository)
	cartSvc := service.NewCartService(carts, store.ProductRepository)
	checkoutSvc := service.NewCheckoutService(store.OrderRepository, store.ProductRepository, store.UserRepository, carts, publisher, emailSvc, cfg.StrictCheckout())
	orderSvc := service.NewOrderService(store.OrderRepository, store.UserRepository, emailSvc)
	rentalSvc := service.NewRentalOrderService(store.RentalOrderRepository, store.ProductRepository, emailSvc)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:        authSvc,
		Catalog:     catalogSvc,
		Cart:        cartSvc,
		Checkout:    checkoutSvc,
		Orders:      orderSvc,
		RentalOrder: rentalSvc,
		Tokens:      tokenManager,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
