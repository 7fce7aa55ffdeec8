package calculate_price

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall not found")

	// ErrCouponNotFound возвращается, когда купон с указанным кодом не найден
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrInvalidPriceRule возвращается, когда правило цены зала содержит некорректные данные
	ErrInvalidPriceRule = errors.New("invalid price rule")

	// ErrInvalidCoupon возвращается, когда коэффициент купона вне диапазона [0, 1]
	ErrInvalidCoupon = errors.New("invalid coupon factor")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
