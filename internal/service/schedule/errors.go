package schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownScope is returned for an unrecognized delete scope
	ErrUnknownScope = errors.New("unknown delete scope")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("service: internal error")
)
