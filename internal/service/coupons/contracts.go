package coupons

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
