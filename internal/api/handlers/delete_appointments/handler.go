package delete_appointments

import (
	"errors"
	"net/http"

	"github.com/ubagofish/scheduler-service/internal/api/handlers"
	scheduleService "github.com/ubagofish/scheduler-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidScope       = "scope must be one of: all, buyer, client, day"
	msgInvalidInput       = "invalid delete parameters"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.DeleteAppointments(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrUnknownScope):
			h.logger.Warn("DELETE /appointments - unknown scope %q", req.Scope)
			handlers.RespondBadRequest(w, msgInvalidScope)
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("DELETE /appointments - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments - scope=%s removed=%d", req.Scope, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Removed: result.Removed})
}
