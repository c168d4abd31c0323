package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payout"
)

type PayoutJobs struct {
	payoutService payout.Service
	actor         string
}

func NewPayoutJobs(payoutService payout.Service, actor string) *PayoutJobs {
	return &PayoutJobs{
		payoutService: payoutService,
		actor:         actor,
	}
}

func (j *PayoutJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJobWhen("auto_compute_monthly_payouts", 1*time.Hour, monthStartGate, j.AutoComputeMonthlyPayouts)
}

// monthStartGate admits the first hour of the first day of the month (UTC).
func monthStartGate(now time.Time) bool {
	utc := now.UTC()
	return utc.Day() == 1 && utc.Hour() == 0
}

// AutoComputeMonthlyPayouts computes the just-ended month's payouts for
// every active employee. Scheduled behind monthStartGate; already-computed
// records are skipped, so reruns within the hour are harmless.
func (j *PayoutJobs) AutoComputeMonthlyPayouts(ctx context.Context) error {
	prev := time.Now().UTC().AddDate(0, 0, -1)

	slog.Info("Cron: Starting auto-compute monthly payouts job",
		"month", int(prev.Month()), "year", prev.Year())

	result, err := j.payoutService.BulkCompute(ctx, payout.BulkComputeRequest{
		Month:      int(prev.Month()),
		Year:       prev.Year(),
		ComputedBy: j.actor,
	})
	if err != nil {
		return fmt.Errorf("failed to bulk compute payouts: %w", err)
	}

	for _, e := range result.Errors {
		slog.Error("Cron: Payout computation failed for employee",
			"employee_id", e.EmployeeID,
			"error", e.Error)
	}

	slog.Info("Cron: Auto-computed monthly payouts",
		"total_requested", result.TotalRequested,
		"successful", result.Successful,
		"failed", result.Failed,
		"skipped", result.Skipped)
	return nil
}
