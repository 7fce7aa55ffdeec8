package create_record

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	createRecord "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_record"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidData         = "некорректные данные записи"
	msgHallNotFound        = "зал не найден"
	msgCouponNotFound      = "купон не найден"
	msgTimeNotAvailable    = "выбранное время недоступно для бронирования"
	msgReservationConflict = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateRecordUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecordUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/records
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /records - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRecordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /records - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createRecord.ErrHallNotFound):
			h.logger.Warn("POST /records - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createRecord.ErrCouponNotFound):
			h.logger.Warn("POST /records - Coupon not found: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, createRecord.ErrTimeNotAvailable):
			h.logger.Warn("POST /records - Time not available: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondConflict(w, msgTimeNotAvailable)

		case errors.Is(err, createRecord.ErrReservationConflict):
			h.logger.Warn("POST /records - Reservation conflict: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondConflict(w, msgReservationConflict)

		case errors.Is(err, createRecord.ErrInvalidInput):
			h.logger.Warn("POST /records - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /records - Failed to create record: user_id=%d, hall_id=%d, error=%v",
				userID, req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /records - Record created successfully: record_id=%d, user_id=%d, hall_id=%d",
		result.ID, userID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
