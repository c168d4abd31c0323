package cron

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBulkComputer struct {
	payout.Service

	calls []payout.BulkComputeRequest
}

func (f *fakeBulkComputer) BulkCompute(_ context.Context, req payout.BulkComputeRequest) (payout.BulkResult, error) {
	f.calls = append(f.calls, req)
	return payout.BulkResult{TotalRequested: 3, Successful: 3}, nil
}

func TestMonthStartGate(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"first of month, midnight", time.Date(2025, 5, 1, 0, 30, 0, 0, time.UTC), true},
		{"first of month, later hour", time.Date(2025, 5, 1, 1, 0, 0, 0, time.UTC), false},
		{"mid month, midnight", time.Date(2025, 5, 15, 0, 30, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthStartGate(tt.at))
		})
	}
}

func TestSchedulePredicateGatesExecution(t *testing.T) {
	svc := &fakeBulkComputer{}
	scheduler := NewScheduler()
	NewPayoutJobs(svc, "system").RegisterJobs(scheduler)

	require.Len(t, scheduler.jobs, 1)
	job := scheduler.jobs[0]
	require.NotNil(t, job.When)

	// Outside the gate the scheduler never invokes the job.
	scheduler.executeJob(job, time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, svc.calls)

	// Inside the gate it runs.
	scheduler.executeJob(job, time.Date(2025, 5, 1, 0, 5, 0, 0, time.UTC))
	assert.Len(t, svc.calls, 1)
}

func TestAutoComputeTargetsPreviousMonth(t *testing.T) {
	svc := &fakeBulkComputer{}
	jobs := NewPayoutJobs(svc, "system")

	require.NoError(t, jobs.AutoComputeMonthlyPayouts(context.Background()))
	require.Len(t, svc.calls, 1)

	prev := time.Now().UTC().AddDate(0, 0, -1)
	assert.Equal(t, int(prev.Month()), svc.calls[0].Month)
	assert.Equal(t, prev.Year(), svc.calls[0].Year)
	assert.Equal(t, "system", svc.calls[0].ComputedBy)
}

func TestRunOnceBypassesPredicates(t *testing.T) {
	svc := &fakeBulkComputer{}
	scheduler := NewScheduler()
	NewPayoutJobs(svc, "system").RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())
	assert.Len(t, svc.calls, 1)
}
