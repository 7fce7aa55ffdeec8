package get_hall_availability

import (
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	getHallAvailability "github.com/m04kA/SMC-HallBookingService/internal/usecase/get_hall_availability"
)

// IntervalResponse интервал времени: начало в unix секундах и длительность в минутах
type IntervalResponse struct {
	StartAt int64 `json:"start_at"`
	Length  int   `json:"length"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HallID       int64              `json:"hall_id"`
	Year         int                `json:"year"`
	Week         int                `json:"week"`
	Dates        []string           `json:"dates"` // "2024-03-11" ... "2024-03-17"
	Reservations []IntervalResponse `json:"reservations"`
	Limitations  []IntervalResponse `json:"limitations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHallAvailability.Response) *AvailabilityResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	reservations := make([]IntervalResponse, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		reservations = append(reservations, IntervalResponse{StartAt: r.StartAt, Length: r.Length})
	}

	limitations := make([]IntervalResponse, 0, len(resp.Limitations))
	for _, l := range resp.Limitations {
		limitations = append(limitations, IntervalResponse{StartAt: l.StartAt, Length: l.Length})
	}

	return &AvailabilityResponse{
		HallID:       resp.HallID,
		Year:         resp.Year,
		Week:         resp.Week,
		Dates:        dates,
		Reservations: reservations,
		Limitations:  limitations,
	}
}
