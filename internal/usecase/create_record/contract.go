package create_record

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/infra/queue"
	calculatePrice "github.com/m04kA/SMC-HallBookingService/internal/usecase/calculate_price"
)

// RecordRepository интерфейс репозитория записей и резерваций
type RecordRepository interface {
	FindByHallAndRange(ctx context.Context, hallID int64, startAt, endAt int64) ([]domain.Reservation, error)
	CreateRecord(ctx context.Context, record *domain.Record) (*domain.Record, error)
}

// SettingRepository интерфейс репозитория настроек
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
}

// PriceCalculator расчет стоимости записи
type PriceCalculator interface {
	Execute(ctx context.Context, req *calculatePrice.Request) (*calculatePrice.Response, error)
}

// EventPublisher публикация событий о созданных записях
type EventPublisher interface {
	PublishRecordCreated(ctx context.Context, event queue.RecordCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecordsCounter счетчик созданных записей (prometheus.CounterVec)
type RecordsCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
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
