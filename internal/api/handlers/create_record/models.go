package create_record

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	createRecord "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_record"
)

// ReservationRequest резервация: начало в unix секундах и длительность в минутах
type ReservationRequest struct {
	StartAt int64 `json:"start_at"`
	Length  int   `json:"length"`
}

// CreateRecordRequest HTTP request model
type CreateRecordRequest struct {
	HallID       int64                `json:"hallId" validate:"required,gt=0"`
	Reservations []ReservationRequest `json:"reservations" validate:"required,min=1"`
	ServiceIDs   []int64              `json:"serviceIds,omitempty" validate:"omitempty,dive,gt=0"`
	Coupon       *string              `json:"coupon,omitempty"`
	Comment      *string              `json:"comment,omitempty"`
}

// ReservationResponse резервация в ответе
type ReservationResponse struct {
	StartAt int64 `json:"start_at"`
	Length  int   `json:"length"`
}

// RecordResponse HTTP response model
type RecordResponse struct {
	ID           int64                 `json:"id"`
	UserID       int64                 `json:"userId"`
	HallID       int64                 `json:"hallId"`
	Reservations []ReservationResponse `json:"reservations"`
	ServiceIDs   []int64               `json:"serviceIds"`
	Coupon       *string               `json:"coupon,omitempty"`
	Price        int64                 `json:"price"`
	Prepayment   int64                 `json:"prepayment"`
	Status       string                `json:"status"`
	Comment      *string               `json:"comment,omitempty"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRecordRequest) ToUseCaseRequest(userID int64) *createRecord.Request {
	reservations := make([]domain.Reservation, 0, len(r.Reservations))
	for _, res := range r.Reservations {
		reservations = append(reservations, domain.Reservation{StartAt: res.StartAt, Length: res.Length})
	}

	return &createRecord.Request{
		UserID:       userID,
		HallID:       r.HallID,
		Reservations: reservations,
		ServiceIDs:   r.ServiceIDs,
		CouponCode:   r.Coupon,
		Comment:      r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRecord.Response) *RecordResponse {
	reservations := make([]ReservationResponse, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		reservations = append(reservations, ReservationResponse{StartAt: r.StartAt, Length: r.Length})
	}

	serviceIDs := resp.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &RecordResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		HallID:       resp.HallID,
		Reservations: reservations,
		ServiceIDs:   serviceIDs,
		Coupon:       resp.CouponCode,
		Price:        resp.Price,
		Prepayment:   resp.Prepayment,
		Status:       string(resp.Status),
		Comment:      resp.Comment,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
