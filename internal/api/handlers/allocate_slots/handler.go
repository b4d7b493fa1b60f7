package allocate_slots

import (
	"errors"
	"net/http"

	"github.com/ubagofish/scheduler-service/internal/api/handlers"
	allocateSlots "github.com/ubagofish/scheduler-service/internal/usecase/allocate_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDay         = "unknown day label"
	msgInvalidInput       = "invalid allocation parameters"
)

type Handler struct {
	useCase AllocateSlotsUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase AllocateSlotsUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/allocate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/allocate - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/allocate - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, allocateSlots.ErrInvalidInput):
			h.logger.Warn("POST /schedule/allocate - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /schedule/allocate - allocation failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveAllocation(result.Total.Kept, result.Total.Added, result.Total.Moved, result.Total.Skipped)
	}

	h.logger.Info("POST /schedule/allocate - kept=%d added=%d moved=%d skipped=%d",
		result.Total.Kept, result.Total.Added, result.Total.Moved, result.Total.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
