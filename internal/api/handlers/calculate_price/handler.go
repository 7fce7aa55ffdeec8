package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-HallBookingService/internal/usecase/calculate_price"
)

const (
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные резерваций"
	msgHallNotFound       = "зал не найден"
	msgCouponNotFound     = "купон не найден"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/halls/{hallId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil || hallID <= 0 {
		h.logger.Warn("POST /halls/{id}/price - Invalid hall ID: %v", mux.Vars(r)["hallId"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls/{id}/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(hallID))
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrHallNotFound):
			h.logger.Warn("POST /halls/{id}/price - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, calculatePrice.ErrCouponNotFound):
			h.logger.Warn("POST /halls/{id}/price - Coupon not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /halls/{id}/price - Invalid data: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			// некорректные правила цены и купоны тоже сюда: это ошибка данных сервиса, а не клиента
			h.logger.Error("POST /halls/{id}/price - Failed to calculate price: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /halls/{id}/price - Price calculated: hall_id=%d, price=%d, prepayment=%d",
		hallID, result.Price, result.Prepayment)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
