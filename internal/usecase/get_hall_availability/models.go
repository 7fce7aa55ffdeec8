package get_hall_availability

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Request модель запроса доступности зала на неделю
type Request struct {
	HallID int64
	Year   int // ISO год, отрицательные значения берутся по модулю
	Week   int // номер ISO недели
}

// Response документ доступности на неделю
type Response struct {
	HallID       int64
	Year         int                  // нормализованный ISO год (по воскресенью)
	Week         int                  // нормализованная ISO неделя
	Dates        [7]time.Time         // пн..вс, полночь в часовом поясе сервера
	Reservations []domain.Reservation // существующие резервации зала за неделю
	Limitations  []domain.Window      // окна, недоступные для бронирования
}
