package update_hall_prices

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/halls"
	"github.com/m04kA/SMC-HallBookingService/internal/service/halls/models"
)

const (
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "зал не найден"
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

// Handle PUT /api/v1/halls/{hallId}/prices
// Заменяет весь список правил цены зала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil || hallID <= 0 {
		h.logger.Warn("PUT /halls/{id}/prices - Invalid hall ID: %v", mux.Vars(r)["hallId"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	var req models.UpdatePricesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /halls/{id}/prices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hall, err := h.service.UpdatePrices(r.Context(), hallID, &req)
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			h.logger.Warn("PUT /halls/{id}/prices - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, halls.ErrInvalidPriceRule), errors.Is(err, halls.ErrInvalidInput):
			h.logger.Warn("PUT /halls/{id}/prices - Invalid price rule: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidPriceRule)

		default:
			h.logger.Error("PUT /halls/{id}/prices - Failed to update prices: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /halls/{id}/prices - Prices updated successfully: hall_id=%d, rules=%d",
		hallID, len(hall.Prices))
	handlers.RespondJSON(w, http.StatusOK, hall)
}
