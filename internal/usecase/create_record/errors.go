package create_record

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall not found")

	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrTimeNotAvailable возвращается, когда резервация попадает в недоступное окно
	// (прошедшее время, слишком далекая дата, уже прошедшие часы сегодня)
	ErrTimeNotAvailable = errors.New("reservation time is not available")

	// ErrReservationConflict возвращается, когда резервация пересекается с существующей
	ErrReservationConflict = errors.New("reservation conflicts with an existing one")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
