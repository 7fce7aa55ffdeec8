package calculate_price

import "github.com/m04kA/SMC-HallBookingService/internal/domain"

// Request модель запроса расчета стоимости
type Request struct {
	HallID       int64
	Reservations []domain.Reservation
	ServiceIDs   []int64
	CouponCode   *string
}

// Response рассчитанная стоимость
type Response struct {
	HallID     int64
	Subtotal   int64   // стоимость по правилам зала, до скидки
	Price      int64   // итоговая стоимость после скидки купона
	Prepayment int64   // предоплата от итоговой стоимости
	CouponCode *string // примененный купон
}
