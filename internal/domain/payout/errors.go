package payout

import "errors"

var (
	ErrPayoutNotFound    = errors.New("monthly payout not found")
	ErrInvalidTransition = errors.New("invalid payout status transition")
	ErrInvalidLWPDays    = errors.New("lwp days must be between zero and the days in the month")
)
