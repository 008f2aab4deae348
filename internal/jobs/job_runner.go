package jobs

import (
	"github.com/rajvichauhan/Rental-Management-sub000/internal/config"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	users        repository.UserRepository
	orders       repository.OrderRepository
	rentalOrders repository.RentalOrderRepository
	email        service.EmailService
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies.
func NewJobRunner(users repository.UserRepository, orders repository.OrderRepository, rentalOrders repository.RentalOrderRepository, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		users:        users,
		orders:       orders,
		rentalOrders: rentalOrders,
		email:        email,
		config:       cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job once (for manual execution).
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireStaleQuotations()
	jr.SendPendingOrderReminders()
}
