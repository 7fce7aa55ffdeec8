package create_hall

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/halls"
	"github.com/m04kA/SMC-HallBookingService/internal/service/halls/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные зала"
	msgInvalidPriceRule   = "некорректное правило цены"
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

// Handle POST /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hall, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrInvalidPriceRule):
			h.logger.Warn("POST /halls - Invalid price rule: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidPriceRule)

		case errors.Is(err, halls.ErrInvalidInput):
			h.logger.Warn("POST /halls - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /halls - Failed to create hall: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /halls - Hall created successfully: hall_id=%d", hall.ID)
	handlers.RespondJSON(w, http.StatusCreated, hall)
}
