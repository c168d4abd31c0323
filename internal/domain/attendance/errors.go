package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidPeriod  = errors.New("total working days must be greater than zero")
)
