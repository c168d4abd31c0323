package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee carries the payroll configuration the engine needs. The full HR
// profile lives with the HR data collaborator; only payout-relevant fields
// appear here.
type Employee struct {
	ID                string
	Name              string
	Email             *string
	Phone             *string
	BaseMonthlySalary *decimal.Decimal
	IsActive          bool
	JoinDate          time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBaseSalary reports whether a positive base monthly salary is
// configured. Payout computation fails per-employee without one.
func (e Employee) HasBaseSalary() bool {
	return e.BaseMonthlySalary != nil && e.BaseMonthlySalary.IsPositive()
}
