package export_schedule

import (
	"fmt"
	"net/http"

	"github.com/ubagofish/scheduler-service/internal/api/handlers"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	useCase ExportScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ExportScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/export - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		h.logger.Warn("GET /schedule/export - failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /schedule/export - served %s (%d bytes)", result.Filename, len(result.Data))
}
