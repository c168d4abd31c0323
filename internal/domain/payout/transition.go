package payout

import (
	"fmt"
	"time"
)

// Action is a lifecycle action requested against a payout record.
type Action string

const (
	ActionCompute   Action = "compute"
	ActionRecompute Action = "recompute"
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionPaySalary Action = "pay_salary"
	ActionPayTDS    Action = "pay_tds"
)

// Actions lists every lifecycle action, for exhaustiveness checks.
var Actions = []Action{
	ActionCompute,
	ActionRecompute,
	ActionApprove,
	ActionReject,
	ActionPaySalary,
	ActionPayTDS,
}

// transitions is the full status graph. Salary and TDS are two payment
// legs that must both clear: paying one leg from approved parks the record
// in the intermediate state, paying the other from there settles it.
var transitions = map[Status]map[Action]Status{
	StatusNotComputed: {
		ActionCompute: StatusComputed,
	},
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
	StatusRejected: {
		ActionRecompute: StatusComputed,
	},
	// StatusPaid is terminal.
	StatusPaid: {},
}

// InvalidTransitionError reports a status-graph violation. It matches
// ErrInvalidTransition under errors.Is.
type InvalidTransitionError struct {
	From   Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %q is not valid from status %q", e.Action, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// CanApply reports whether action is valid from the given status.
func CanApply(from Status, action Action) bool {
	_, ok := transitions[from][action]
	return ok
}

// NextStatus resolves the status the record moves to when action is applied
// from the given status. The graph is never mutated by this call.
func NextStatus(from Status, action Action) (Status, error) {
	next, ok := transitions[from][action]
	if !ok {
		return from, &InvalidTransitionError{From: from, Action: action}
	}
	return next, nil
}

// ValidActions lists the actions applicable from the given status.
func ValidActions(from Status) []Action {
	var actions []Action
	for _, a := range Actions {
		if CanApply(from, a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// TransitionParams carries the audit inputs for a transition.
type TransitionParams struct {
	Actor            string
	Reason           *string
	PaymentReference *string
	At               time.Time
}

// Apply returns a copy of rec moved by action, stamping the matching audit
// fields. The input record is never mutated; on an invalid transition the
// returned record equals the input. Derived pay figures are the compute
// step's responsibility, not Apply's: compute/recompute here only resets
// the status and clears stale approval/payment audit trails.
func Apply(rec MonthlyPayout, action Action, p TransitionParams) (MonthlyPayout, error) {
	next, err := NextStatus(rec.Status, action)
	if err != nil {
		return rec, err
	}

	at := p.At
	if at.IsZero() {
		at = time.Now()
	}
	actor := stringPtrOrNil(p.Actor)

	out := rec
	out.Status = next
	out.UpdatedAt = at

	switch action {
	case ActionCompute, ActionRecompute:
		out.ComputedBy = actor
		out.ComputedAt = &at
		// A fresh computation discards any prior approval or payment.
		out.ApprovedBy, out.ApprovedAt = nil, nil
		out.RejectedBy, out.RejectedAt, out.RejectionReason = nil, nil, nil
		out.SalaryPaidBy, out.SalaryPaidAt, out.SalaryPaymentReference = nil, nil, nil
		out.TDSPaidBy, out.TDSPaidAt, out.TDSPaymentReference = nil, nil, nil
	case ActionApprove:
		out.ApprovedBy = actor
		out.ApprovedAt = &at
	case ActionReject:
		out.RejectedBy = actor
		out.RejectedAt = &at
		out.RejectionReason = p.Reason
	case ActionPaySalary:
		out.SalaryPaidBy = actor
		out.SalaryPaidAt = &at
		out.SalaryPaymentReference = p.PaymentReference
	case ActionPayTDS:
		out.TDSPaidBy = actor
		out.TDSPaidAt = &at
		out.TDSPaymentReference = p.PaymentReference
	}

	return out, nil
}

func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
