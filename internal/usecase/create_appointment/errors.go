package create_appointment

import "errors"

var (
	// ErrLunchBlackout is returned when the requested slot falls inside
	// the lunch window
	ErrLunchBlackout = errors.New("slot is inside the lunch blackout")

	// ErrOutsideWindow is returned when the requested slot is off the
	// grid or outside the operating window
	ErrOutsideWindow = errors.New("slot is outside the operating window")

	// ErrSlotTaken is returned when the buyer or the client already has
	// an appointment at that day and slot
	ErrSlotTaken = errors.New("slot already taken for a participant")

	// ErrAppointmentExists is returned when the exact appointment is
	// already scheduled
	ErrAppointmentExists = errors.New("appointment already exists")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
