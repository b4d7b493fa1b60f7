package update_settings

import (
	"context"

	"github.com/ubagofish/scheduler-service/internal/domain"
	settingsService "github.com/ubagofish/scheduler-service/internal/service/settings"
)

type SettingsService interface {
	Update(ctx context.Context, newSettings domain.Settings) (*settingsService.UpdateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
