package get_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/settings"
)

const (
	msgUnknownSetting = "неизвестная настройка"
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

// Handle GET /api/v1/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	setting, err := h.service.Get(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownSetting):
			h.logger.Warn("GET /settings/{key} - Unknown setting: key=%s", key)
			handlers.RespondNotFound(w, msgUnknownSetting)

		default:
			h.logger.Error("GET /settings/{key} - Failed to get setting: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings/{key} - Setting retrieved: key=%s, value=%s", key, setting.Value)
	handlers.RespondJSON(w, http.StatusOK, setting)
}
