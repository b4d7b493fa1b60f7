package allocate_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	// (bad interval, unknown day, negative cadence)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
