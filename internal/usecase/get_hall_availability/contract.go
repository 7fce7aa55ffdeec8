package get_hall_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	// FindByHallAndRange резервации зала с start_at в [startAt, endAt)
	FindByHallAndRange(ctx context.Context, hallID int64, startAt, endAt int64) ([]domain.Reservation, error)
}

// SettingRepository интерфейс репозитория настроек
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Часовой пояс Now() считается часовым поясом сервера
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе сервера
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
