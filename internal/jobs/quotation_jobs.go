package jobs

import (
	"context"
	"time"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
)

// ExpireStaleQuotations cancels sent quotations that the customer never
// confirmed within the configured TTL.
func (jr *JobRunner) ExpireStaleQuotations() {
	jr.runWithRecovery("ExpireStaleQuotations", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Scheduler.QuotationTTLDays)

		stale, err := jr.rentalOrders.ListSentBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale quotations", "error", err)
			return
		}

		count := 0
		for idx := range stale {
			order := &stale[idx]
			if err := order.Cancel(); err != nil {
				logger.Error("Failed to cancel stale quotation", "quotation_id", order.ID, "error", err)
				continue
			}
			if err := jr.rentalOrders.Update(ctx, order); err != nil {
				logger.Error("Failed to persist cancelled quotation", "quotation_id", order.ID, "error", err)
				continue
			}
			logger.Debug("Expired stale quotation", "quotation_id", order.ID, "customer_email", order.CustomerEmail)
			count++
		}

		logger.Info("Expired stale quotations", "count", count, "cutoff", cutoff.Format("2006-01-02"))
	})
}
