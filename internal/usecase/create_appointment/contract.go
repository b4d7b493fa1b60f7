package create_appointment

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
)

// ScheduleStore is the appointment store interface used by the usecase
type ScheduleStore interface {
	// Settings returns the current schedule settings
	Settings() domain.Settings

	// Add stores one appointment, enforcing the double-booking invariant
	Add(appt domain.Appointment) error
}

// Logger is the logging interface used by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
