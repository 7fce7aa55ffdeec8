package calculate_price

import (
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-HallBookingService/internal/usecase/calculate_price"
)

// ReservationRequest резервация: начало в unix секундах и длительность в минутах
type ReservationRequest struct {
	StartAt int64 `json:"start_at"`
	Length  int   `json:"length"`
}

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	Reservations []ReservationRequest `json:"reservations" validate:"required,min=1"`
	ServiceIDs   []int64              `json:"service_ids,omitempty" validate:"omitempty,dive,gt=0"`
	Coupon       *string              `json:"coupon,omitempty"`
}

// PriceResponse HTTP response model
type PriceResponse struct {
	Price      int64   `json:"price"`
	Prepayment int64   `json:"prepayment"`
	Subtotal   int64   `json:"subtotal"`
	Coupon     *string `json:"coupon,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest(hallID int64) *calculatePrice.Request {
	reservations := make([]domain.Reservation, 0, len(r.Reservations))
	for _, res := range r.Reservations {
		reservations = append(reservations, domain.Reservation{StartAt: res.StartAt, Length: res.Length})
	}

	return &calculatePrice.Request{
		HallID:       hallID,
		Reservations: reservations,
		ServiceIDs:   r.ServiceIDs,
		CouponCode:   r.Coupon,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceResponse {
	return &PriceResponse{
		Price:      resp.Price,
		Prepayment: resp.Prepayment,
		Subtotal:   resp.Subtotal,
		Coupon:     resp.CouponCode,
	}
}
