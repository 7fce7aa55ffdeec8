package create_record

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	UserID       int64
	HallID       int64
	Reservations []domain.Reservation
	ServiceIDs   []int64
	CouponCode   *string
	Comment      *string
}

// Response созданная запись
type Response struct {
	ID           int64
	UserID       int64
	HallID       int64
	Reservations []domain.Reservation
	ServiceIDs   []int64
	CouponCode   *string
	Price        int64
	Prepayment   int64
	Status       domain.RecordStatus
	Comment      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
