package get_coupon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons"
)

const (
	msgNotFound = "купон не найден"
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

// Handle GET /api/v1/coupons/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	coupon, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponNotFound):
			h.logger.Warn("GET /coupons/{code} - Coupon not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /coupons/{code} - Failed to get coupon: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coupons/{code} - Coupon retrieved: code=%s", coupon.Code)
	handlers.RespondJSON(w, http.StatusOK, coupon)
}
