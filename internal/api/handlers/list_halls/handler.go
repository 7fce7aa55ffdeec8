package list_halls

import (
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

type Handler struct {
	service HallService
	logger  Logger
}

func NewHandler(service HallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /halls - Halls retrieved successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
