package models

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Actor пользователь, выполняющий действие
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// ReservationResponse резервация в ответе
type ReservationResponse struct {
	StartAt int64 `json:"start_at"`
	Length  int   `json:"length"`
}

// RecordResponse ответ с данными записи
type RecordResponse struct {
	ID            int64                 `json:"id"`
	UserID        int64                 `json:"userId"`
	HallID        int64                 `json:"hallId"`
	Reservations  []ReservationResponse `json:"reservations"`
	ServiceIDs    []int64               `json:"serviceIds"`
	CouponCode    *string               `json:"couponCode,omitempty"`
	Price         int64                 `json:"price"`
	Prepayment    int64                 `json:"prepayment"`
	Status        string                `json:"status"`
	PaymentStatus *string               `json:"paymentStatus,omitempty"`
	Comment       *string               `json:"comment,omitempty"`
	CreatedAt     string                `json:"createdAt"`
	UpdatedAt     string                `json:"updatedAt"`
}

// FromDomainRecord конвертирует domain.Record в RecordResponse
func FromDomainRecord(r *domain.Record) *RecordResponse {
	resp := &RecordResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		HallID:        r.HallID,
		Reservations:  FromDomainReservations(r.Reservations),
		ServiceIDs:    r.ServiceIDs,
		CouponCode:    r.CouponCode,
		Price:         r.Price,
		Prepayment:    r.Prepayment,
		Status:        string(r.Status),
		PaymentStatus: r.PaymentStatus,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []int64{}
	}
	return resp
}

// FromDomainReservations конвертирует резервации
func FromDomainReservations(in []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(in))
	for _, r := range in {
		out = append(out, ReservationResponse{StartAt: r.StartAt, Length: r.Length})
	}
	return out
}
