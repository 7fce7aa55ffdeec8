package update_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/settings"
	"github.com/m04kA/SMC-HallBookingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownSetting     = "неизвестная настройка"
	msgInvalidValue       = "некорректное значение настройки"
)

type Handler struct {
	service SettingService
	logger  Logger
}

func NewHandler(service SettingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req models.UpdateSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	setting, err := h.service.Set(r.Context(), key, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownSetting):
			h.logger.Warn("PUT /settings/{key} - Unknown setting: key=%s", key)
			handlers.RespondNotFound(w, msgUnknownSetting)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings/{key} - Invalid value: key=%s, error=%v", key, err)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("PUT /settings/{key} - Failed to update setting: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/{key} - Setting updated: key=%s, value=%s", key, setting.Value)
	handlers.RespondJSON(w, http.StatusOK, setting)
}
