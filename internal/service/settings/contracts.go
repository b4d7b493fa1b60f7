package settings

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
)

// Store is the appointment store interface used by the service
type Store interface {
	Settings() domain.Settings

	// SetSettings replaces the settings, prunes appointments now inside
	// the lunch blackout and returns the pruned count
	SetSettings(settings domain.Settings) (int, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
