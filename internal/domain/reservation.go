package domain

import "time"

// Reservation is a single time-bounded booking request within a record
type Reservation struct {
	StartAt int64 // unix seconds
	Length  int   // minutes
}

// Start returns the start of the reservation in loc
func (r Reservation) Start(loc *time.Location) time.Time {
	return time.Unix(r.StartAt, 0).In(loc)
}

// EndAt returns the end of the reservation in unix seconds
func (r Reservation) EndAt() int64 {
	return r.StartAt + int64(r.Length)*60
}

// Overlaps returns true if the half-open intervals [start, end) intersect
func (r Reservation) Overlaps(other Reservation) bool {
	return r.StartAt < other.EndAt() && other.StartAt < r.EndAt()
}

// RecordStatus represents the status of a booking record
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusConfirmed RecordStatus = "confirmed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

// Record groups the reservations made by a client in one request
type Record struct {
	ID           int64
	UserID       int64
	HallID       int64
	Reservations []Reservation
	ServiceIDs   []int64
	CouponCode   *string
	Price        int64
	Prepayment   int64
	Status       RecordStatus
	// PaymentStatus is owned by the payment gateway and stored as-is
	PaymentStatus *string
	Comment       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the record is still active
func (r *Record) CanBeCancelled() bool {
	return r.Status == RecordStatusPending || r.Status == RecordStatusConfirmed
}

// IsActive returns true if the record still holds its reservations
func (r *Record) IsActive() bool {
	return r.Status != RecordStatusCancelled
}
