package pricing

import (
	"math"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// ApplyCoupon применяет скидку купона к сумме: subtotal - floor(subtotal * factor)
// Без купона или без коэффициента сумма не меняется. Диапазон factor проверяет вызывающий код
func ApplyCoupon(subtotal int64, coupon *domain.Coupon) int64 {
	if coupon == nil || coupon.Factor == nil {
		return subtotal
	}
	return subtotal - int64(math.Floor(float64(subtotal) * *coupon.Factor))
}

// Prepayment возвращает сумму предоплаты: percent процентов от price (целочисленно)
func Prepayment(price int64, percent int) int64 {
	if percent <= 0 {
		return 0
	}
	return price * int64(percent) / 100
}
