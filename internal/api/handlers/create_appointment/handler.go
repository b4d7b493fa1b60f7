package create_appointment

import (
	"errors"
	"net/http"

	"github.com/ubagofish/scheduler-service/internal/api/handlers"
	createAppointment "github.com/ubagofish/scheduler-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDayOrSlot   = "invalid day or slot, expected a weekday label and HH:MM"
	msgLunchBlackout      = "cannot schedule during the lunch blackout"
	msgOutsideWindow      = "slot is outside the operating window"
	msgSlotTaken          = "buyer or client already has an appointment at that slot"
	msgAlreadyExists      = "this appointment is already scheduled"
	msgInvalidInput       = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOrSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrLunchBlackout):
			h.logger.Warn("POST /appointments - lunch blackout: %s %s", req.Day, req.Slot)
			handlers.RespondBadRequest(w, msgLunchBlackout)

		case errors.Is(err, createAppointment.ErrOutsideWindow):
			h.logger.Warn("POST /appointments - outside operating window: %s", req.Slot)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - slot taken: %s %s", req.Day, req.Slot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrAppointmentExists):
			h.logger.Warn("POST /appointments - already exists: %s with %s", req.Client, req.Buyer)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - pinned %s with %s (%s at %s)",
		req.Client, req.Buyer, req.Day, req.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
