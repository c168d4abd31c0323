package payout

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusFullGraph(t *testing.T) {
	valid := map[Status]map[Action]Status{
		StatusNotComputed: {ActionCompute: StatusComputed},
		StatusComputed: {
			ActionRecompute: StatusComputed,
			ActionApprove:   StatusApproved,
			ActionReject:    StatusRejected,
		},
		StatusApproved: {
			ActionReject:    StatusRejected,
			ActionPaySalary: StatusSalaryPaid,
			ActionPayTDS:    StatusTDSPaid,
		},
		StatusSalaryPaid: {
			ActionReject: StatusRejected,
			ActionPayTDS: StatusPaid,
		},
		StatusTDSPaid: {
			ActionReject:    StatusRejected,
			ActionPaySalary: StatusPaid,
		},
		StatusRejected: {ActionRecompute: StatusComputed},
		StatusPaid:     {},
	}

	// Every status/action pair either matches the expected edge or fails
	// with an invalid-transition error; nothing else.
	for _, from := range Statuses {
		for _, action := range Actions {
			next, err := NextStatus(from, action)
			want, ok := valid[from][action]
			if ok {
				assert.NoError(t, err, "from %s action %s", from, action)
				assert.Equal(t, want, next, "from %s action %s", from, action)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "from %s action %s", from, action)
				assert.Equal(t, from, next, "invalid transition must not move status")
			}
		}
	}
}

func TestValidActionsFromComputed(t *testing.T) {
	got := ValidActions(StatusComputed)
	assert.ElementsMatch(t, []Action{ActionRecompute, ActionApprove, ActionReject}, got)
}

func TestPaidIsTerminal(t *testing.T) {
	assert.Empty(t, ValidActions(StatusPaid))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rec := MonthlyPayout{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2025,
		Status:     StatusComputed,
	}

	out, err := Apply(rec, ActionApprove, TransitionParams{Actor: "admin-1", At: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, StatusComputed, rec.Status, "input record must stay untouched")
	assert.Nil(t, rec.ApprovedBy)
	assert.Equal(t, StatusApproved, out.Status)
	require.NotNil(t, out.ApprovedBy)
	assert.Equal(t, "admin-1", *out.ApprovedBy)
	assert.NotNil(t, out.ApprovedAt)
}

func TestApplyInvalidTransitionReturnsInputUnchanged(t *testing.T) {
	rec := MonthlyPayout{Status: StatusNotComputed}

	out, err := Apply(rec, ActionPaySalary, TransitionParams{Actor: "admin-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var ite *InvalidTransitionError
	require.True(t, errors.As(err, &ite))
	assert.Equal(t, StatusNotComputed, ite.From)
	assert.Equal(t, ActionPaySalary, ite.Action)
	assert.Equal(t, rec, out)
}

func TestApplyRecomputeClearsApprovalAudit(t *testing.T) {
	actor := "admin-1"
	now := time.Now()
	rec := MonthlyPayout{
		Status:     StatusRejected,
		ApprovedBy: &actor,
		ApprovedAt: &now,
		RejectedBy: &actor,
		RejectedAt: &now,
	}

	out, err := Apply(rec, ActionRecompute, TransitionParams{Actor: "admin-2", At: now})
	require.NoError(t, err)

	assert.Equal(t, StatusComputed, out.Status)
	assert.Nil(t, out.ApprovedBy)
	assert.Nil(t, out.ApprovedAt)
	assert.Nil(t, out.RejectedBy)
	assert.Nil(t, out.RejectedAt)
	assert.Nil(t, out.RejectionReason)
	require.NotNil(t, out.ComputedBy)
	assert.Equal(t, "admin-2", *out.ComputedBy)
}

func TestApplyTwoLegPaymentSettlesEitherOrder(t *testing.T) {
	ref := "BANK-123"
	params := TransitionParams{Actor: "finance-1", PaymentReference: &ref, At: time.Now()}

	// salary leg first
	rec := MonthlyPayout{Status: StatusApproved}
	afterSalary, err := Apply(rec, ActionPaySalary, params)
	require.NoError(t, err)
	assert.Equal(t, StatusSalaryPaid, afterSalary.Status)

	settled, err := Apply(afterSalary, ActionPayTDS, params)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, settled.Status)
	require.NotNil(t, settled.SalaryPaymentReference)
	require.NotNil(t, settled.TDSPaymentReference)

	// TDS leg first
	afterTDS, err := Apply(rec, ActionPayTDS, params)
	require.NoError(t, err)
	assert.Equal(t, StatusTDSPaid, afterTDS.Status)

	settled, err = Apply(afterTDS, ActionPaySalary, params)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, settled.Status)
}

func TestDeductionBreakdownTotal(t *testing.T) {
	d := DeductionBreakdown{
		EPF:             decimal.NewFromInt(1800),
		ESI:             decimal.NewFromInt(200),
		ProfessionalTax: decimal.NewFromInt(200),
		TDS:             decimal.NewFromInt(2500),
		Advance:         decimal.NewFromInt(300),
	}
	assert.True(t, d.Total().Equal(decimal.NewFromInt(5000)))
	assert.False(t, d.HasNegative())

	d.Loan = decimal.NewFromInt(-1)
	assert.True(t, d.HasNegative())
}
