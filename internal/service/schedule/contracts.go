package schedule

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
)

// Store is the appointment store interface used by the service
type Store interface {
	Buyers() []string
	Clients() []string
	Appointments() []domain.Appointment
	Settings() domain.Settings

	SetParticipants(buyers, clients []string) error
	DeleteAll() (int, error)
	DeleteByBuyer(buyer string) (int, error)
	DeleteByClient(client string) (int, error)
	DeleteByDay(day domain.Day) (int, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
