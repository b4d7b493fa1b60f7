package settings

import "errors"

var (
	// ErrInvalidSettings is returned when the new settings fail
	// domain validation
	ErrInvalidSettings = errors.New("invalid schedule settings")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("service: internal error")
)
