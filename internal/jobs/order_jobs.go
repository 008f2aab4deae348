package jobs

import (
	"context"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
)

// SendPendingOrderReminders emails customers whose orders have sat in
// pending longer than the configured window.
func (jr *JobRunner) SendPendingOrderReminders() {
	jr.runWithRecovery("SendPendingOrderReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Scheduler.PendingReminderHours) * time.Hour)

		pending, err := jr.orders.ListStale(ctx, domain.OrderStatusPending, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending orders", "error", err)
			return
		}

		count := 0
		for idx := range pending {
			order := &pending[idx]
			user, err := jr.users.GetByID(ctx, order.UserID)
			if err != nil {
				logger.Error("Failed to resolve order owner", "order_id", order.ID, "user_id", order.UserID, "error", err)
				continue
			}
			if err := jr.email.SendPendingOrderReminder(ctx, user.Email, order.ID, order.CreatedOn); err != nil {
				logger.Error("Failed to send pending order reminder", "order_id", order.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent pending order reminders", "count", count, "cutoff", cutoff.Format(time.RFC3339))
	})
}
