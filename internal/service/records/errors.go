package records

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись не найдена
	ErrRecordNotFound = errors.New("record not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец записи и не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись уже отменена
	ErrCannotCancel = errors.New("record cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
