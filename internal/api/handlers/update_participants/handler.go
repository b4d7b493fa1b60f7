package update_participants

import (
	"net/http"

	"github.com/ubagofish/scheduler-service/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle PUT /api/v1/participants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateParticipantsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /participants - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateParticipants(r.Context(), req.Buyers, req.Clients)
	if err != nil {
		h.logger.Error("PUT /participants - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /participants - %d buyers, %d clients", len(result.Buyers), len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, ParticipantsResponse{
		Buyers:  result.Buyers,
		Clients: result.Clients,
	})
}
