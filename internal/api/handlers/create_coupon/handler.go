package create_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons"
	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные купона"
	msgCouponExists       = "купон с таким кодом уже существует"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coupon, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponExists):
			h.logger.Warn("POST /coupons - Coupon already exists: code=%s", req.Code)
			handlers.RespondConflict(w, msgCouponExists)

		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("POST /coupons - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /coupons - Failed to create coupon: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons - Coupon created successfully: code=%s", coupon.Code)
	handlers.RespondJSON(w, http.StatusCreated, coupon)
}
