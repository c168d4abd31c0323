package leave

import "errors"

var (
	ErrRecordNotFound   = errors.New("leave record not found")
	ErrInvalidDateRange = errors.New("leave end date is before start date")
)
