package domain

import "github.com/ubagofish/scheduler-service/pkg/types"

// Default schedule configuration values
const (
	DefaultStartHour  types.TimeString = "06:00"
	DefaultEndHour    types.TimeString = "22:00"
	DefaultLunchStart types.TimeString = "12:00"
	DefaultLunchEnd   types.TimeString = "14:00"
)

// Grid constants
const (
	SlotMinutes = 30 // granularity of the calendar grid

	MinIntervalMinutes = 30
	MaxIntervalMinutes = 60
)

// Allocator retry/cadence bounds
const (
	MaxConsecutiveLimit = 16 // upper bound for the rest-gap cadence setting
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)
