package queue

import "time"

// RecordCreatedQueue имя очереди событий о создании записи
const RecordCreatedQueue = "record.created"

// ReservationEvent бронирование внутри события
type ReservationEvent struct {
	StartAt int64 `json:"start_at"`
	Length  int   `json:"length"`
}

// RecordCreatedEvent событие о создании записи (для платёжного шлюза и уведомлений)
type RecordCreatedEvent struct {
	RecordID     int64              `json:"record_id"`
	HallID       int64              `json:"hall_id"`
	UserID       int64              `json:"user_id"`
	Price        int64              `json:"price"`
	Prepayment   int64              `json:"prepayment"`
	Reservations []ReservationEvent `json:"reservations"`
	CreatedAt    time.Time          `json:"created_at"`
}
