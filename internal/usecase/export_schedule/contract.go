package export_schedule

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
)

// ScheduleStore is the read-only store interface used by the exporter
type ScheduleStore interface {
	Buyers() []string
	Clients() []string
	Appointments() []domain.Appointment
	Settings() domain.Settings
}

// Logger is the logging interface used by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
