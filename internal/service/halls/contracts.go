package halls

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context) ([]*domain.Hall, error)
	Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	ReplacePrices(ctx context.Context, hallID int64, prices []domain.PriceRule) error
}

// HallCache кэш залов
type HallCache interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	Invalidate(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
