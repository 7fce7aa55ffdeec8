package models

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// CreateCouponRequest запрос на создание купона
type CreateCouponRequest struct {
	Code   string   `json:"code" validate:"required,max=64"`
	Factor *float64 `json:"factor" validate:"omitempty,gte=0,lte=1"`
}

// CouponResponse ответ с данными купона
type CouponResponse struct {
	Code      string   `json:"code"`
	Factor    *float64 `json:"factor,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

// FromDomainCoupon конвертирует domain.Coupon в CouponResponse
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	return &CouponResponse{
		Code:      c.Code,
		Factor:    c.Factor,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
