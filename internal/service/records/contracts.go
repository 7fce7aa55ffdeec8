package records

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// RecordRepository интерфейс репозитория записей
type RecordRepository interface {
	GetRecordByID(ctx context.Context, id int64) (*domain.Record, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RecordStatus) error
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
