package payout

import "context"

// Repository is the persistence collaborator for payout records. GetByKey
// returns ErrPayoutNotFound for a key that was never computed; callers
// treat that as StatusNotComputed. The engine itself provides no locking:
// callers serialize concurrent transitions against the same key.
type Repository interface {
	GetByKey(ctx context.Context, employeeID string, month, year int) (MonthlyPayout, error)
	Upsert(ctx context.Context, rec MonthlyPayout) (MonthlyPayout, error)
	Update(ctx context.Context, rec MonthlyPayout) (MonthlyPayout, error)
	List(ctx context.Context, filter Filter) ([]MonthlyPayout, int64, error)
	ListByPeriodStatuses(ctx context.Context, month, year int, statuses []Status) ([]MonthlyPayout, error)
}
