package delete_appointments

import (
	"context"

	"github.com/ubagofish/scheduler-service/internal/service/schedule/models"
)

type ScheduleService interface {
	DeleteAppointments(ctx context.Context, req *models.DeleteRequest) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
