package allocate_slots

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
)

// ScheduleStore is the appointment store interface used by the allocator
type ScheduleStore interface {
	// Appointments returns a snapshot of all stored appointments
	Appointments() []domain.Appointment

	// Settings returns the current schedule settings
	Settings() domain.Settings

	// ReplaceUnlocked atomically removes the unlocked appointments whose
	// buyer, client and day all fall in the targeted sets and appends the
	// allocation result
	ReplaceUnlocked(buyers, clients map[string]bool, days map[domain.Day]bool, result []domain.Appointment) error
}

// Logger is the logging interface used by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
