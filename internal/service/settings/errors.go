package settings

import "errors"

var (
	// ErrUnknownSetting возвращается для ключа, который сервис не поддерживает
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidInput возвращается при некорректном значении настройки
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
