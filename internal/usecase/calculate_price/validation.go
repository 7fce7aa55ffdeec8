package calculate_price

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if err := ValidateReservations(req.Reservations); err != nil {
		return err
	}

	if req.CouponCode != nil && strings.TrimSpace(*req.CouponCode) == "" {
		return fmt.Errorf("%w: coupon code must not be empty", ErrInvalidInput)
	}

	return nil
}

// ValidateReservations проверяет количество и длительность резерваций
func ValidateReservations(reservations []domain.Reservation) error {
	if len(reservations) == 0 {
		return fmt.Errorf("%w: at least one reservation is required", ErrInvalidInput)
	}

	if len(reservations) > domain.MaxReservationsPerRecord {
		return fmt.Errorf("%w: too many reservations (max %d)", ErrInvalidInput, domain.MaxReservationsPerRecord)
	}

	for i, r := range reservations {
		if r.StartAt < 0 {
			return fmt.Errorf("%w: reservation #%d: start_at must not be negative", ErrInvalidInput, i)
		}
		if r.Length < domain.MinReservationLength || r.Length > domain.MaxReservationLength {
			return fmt.Errorf("%w: reservation #%d: length must be in [%d, %d]",
				ErrInvalidInput, i, domain.MinReservationLength, domain.MaxReservationLength)
		}
	}

	return nil
}

// validateCoupon проверяет, что коэффициент купона в диапазоне [0, 1]
func validateCoupon(coupon *domain.Coupon) error {
	if coupon.Factor == nil {
		return nil
	}
	if *coupon.Factor < 0 || *coupon.Factor > 1 {
		return fmt.Errorf("%w: code=%s factor=%v", ErrInvalidCoupon, coupon.Code, *coupon.Factor)
	}
	return nil
}
