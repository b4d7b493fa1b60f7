package update_settings

import (
	"errors"
	"net/http"

	"github.com/ubagofish/scheduler-service/internal/api/handlers"
	settingsService "github.com/ubagofish/scheduler-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimeOrDay   = "invalid time or day label"
	msgInvalidSettings    = "invalid schedule settings"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newSettings, err := req.ToDomainSettings()
	if err != nil {
		h.logger.Warn("PUT /settings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeOrDay)
		return
	}

	result, err := h.service.Update(r.Context(), newSettings)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidSettings):
			h.logger.Warn("PUT /settings - invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
		default:
			h.logger.Error("PUT /settings - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - updated, pruned=%d", result.Pruned)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(result.Settings, result.Pruned))
}
