package get_coupon

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons/models"
)

type CouponService interface {
	GetByCode(ctx context.Context, code string) (*models.CouponResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
