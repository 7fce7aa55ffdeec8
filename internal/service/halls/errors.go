package halls

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall not found")

	// ErrInvalidPriceRule возвращается при некорректном правиле цены
	ErrInvalidPriceRule = errors.New("invalid price rule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
