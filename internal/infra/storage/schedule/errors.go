package schedule

import "errors"

var (
	// ErrSlotTaken is returned when an appointment would double-book the
	// buyer or the client at that day and slot
	ErrSlotTaken = errors.New("schedule.store: slot already taken for a participant")

	// ErrAppointmentExists is returned when the exact appointment is
	// already stored
	ErrAppointmentExists = errors.New("schedule.store: appointment already exists")

	// ErrEncodeState is returned when the state cannot be serialized
	ErrEncodeState = errors.New("schedule.store: failed to encode state")

	// ErrSaveState is returned when the state file cannot be written
	ErrSaveState = errors.New("schedule.store: failed to save state file")

	// ErrLoadState is returned when the state file cannot be read
	// (a missing or corrupt file is not an error; it falls back to defaults)
	ErrLoadState = errors.New("schedule.store: failed to load state file")
)
