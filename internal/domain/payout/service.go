package payout

import "context"

// Service is the payout lifecycle engine's surface: single-record
// computation and transitions, and their bulk counterparts.
type Service interface {
	Compute(ctx context.Context, req ComputeRequest) (Response, error)
	Get(ctx context.Context, employeeID string, month, year int) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	Approve(ctx context.Context, req TransitionRequest) (Response, error)
	Reject(ctx context.Context, req TransitionRequest) (Response, error)
	PaySalary(ctx context.Context, req TransitionRequest) (Response, error)
	PayTDS(ctx context.Context, req TransitionRequest) (Response, error)

	BulkCompute(ctx context.Context, req BulkComputeRequest) (BulkResult, error)
	BulkApprove(ctx context.Context, req BulkTransitionRequest) (BulkResult, error)
	BulkProcess(ctx context.Context, req BulkTransitionRequest) (BulkResult, error)
}
