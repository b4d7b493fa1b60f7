package update_participants

import (
	"context"

	"github.com/ubagofish/scheduler-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateParticipants(ctx context.Context, buyers, clients []string) (*models.ParticipantsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
