package get_hall_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	getHallAvailability "github.com/m04kA/SMC-HallBookingService/internal/usecase/get_hall_availability"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidYear   = "некорректный параметр year"
	msgInvalidWeek   = "некорректный параметр week"
	msgNotFound      = "зал не найден"
	msgWeekNotFound  = "неделя не найдена в календаре"
)

type Handler struct {
	useCase GetHallAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetHallAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/availability?year=2024&week=11
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil || hallID <= 0 {
		h.logger.Warn("GET /halls/{id}/availability - Invalid hall ID: %v", mux.Vars(r)["hallId"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	week, err := strconv.Atoi(query.Get("week"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid week: %q", query.Get("week"))
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getHallAvailability.Request{
		HallID: hallID,
		Year:   year,
		Week:   week,
	})
	if err != nil {
		switch {
		case errors.Is(err, getHallAvailability.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getHallAvailability.ErrInvalidWeek):
			h.logger.Warn("GET /halls/{id}/availability - Invalid week: year=%d, week=%d", year, week)
			handlers.RespondBadRequest(w, msgWeekNotFound)

		case errors.Is(err, getHallAvailability.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/availability - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidHallID)

		default:
			h.logger.Error("GET /halls/{id}/availability - Failed to get availability: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/availability - Availability retrieved: hall_id=%d, year=%d, week=%d, reservations=%d",
		hallID, result.Year, result.Week, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
