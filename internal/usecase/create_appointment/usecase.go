package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
	storage "github.com/ubagofish/scheduler-service/internal/infra/storage/schedule"
)

// UseCase pins one manually chosen appointment.
type UseCase struct {
	store  ScheduleStore
	logger Logger
}

// NewUseCase creates the manual-pin usecase.
func NewUseCase(store ScheduleStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute validates the constraints and stores the appointment with
// Locked=true. Any violation is rejected with no state change.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, buyer=%s, day=%s, slot=%s",
		req.Client, req.Buyer, req.Day, req.Slot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	grid := domain.NewGrid(uc.store.Settings())
	if !grid.Contains(req.Slot) {
		uc.logger.Warn("CreateAppointment: slot %s outside operating window", req.Slot)
		return nil, fmt.Errorf("%w: %s", ErrOutsideWindow, req.Slot)
	}
	if grid.InLunch(req.Slot) {
		uc.logger.Warn("CreateAppointment: slot %s inside lunch blackout", req.Slot)
		return nil, fmt.Errorf("%w: %s", ErrLunchBlackout, req.Slot)
	}

	appt := domain.Appointment{
		Client: req.Client,
		Buyer:  req.Buyer,
		Day:    req.Day,
		Slot:   req.Slot,
		Locked: true,
	}

	if err := uc.store.Add(appt); err != nil {
		switch {
		case errors.Is(err, storage.ErrAppointmentExists):
			uc.logger.Warn("CreateAppointment: already exists: %s", appt)
			return nil, ErrAppointmentExists
		case errors.Is(err, storage.ErrSlotTaken):
			uc.logger.Warn("CreateAppointment: slot taken: %s", appt)
			return nil, ErrSlotTaken
		default:
			uc.logger.Error("CreateAppointment: failed to store %s: %v", appt, err)
			return nil, fmt.Errorf("%w: failed to store appointment: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAppointment: pinned %s", appt)
	return &Response{Appointment: appt}, nil
}
