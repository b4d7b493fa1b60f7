package export_schedule

import (
	"context"

	exportSchedule "github.com/ubagofish/scheduler-service/internal/usecase/export_schedule"
)

type ExportScheduleUseCase interface {
	Execute(ctx context.Context) (*exportSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
