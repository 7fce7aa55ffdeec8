package coupons

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponExists возвращается при попытке создать купон с существующим кодом
	ErrCouponExists = errors.New("coupon already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
