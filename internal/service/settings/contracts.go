package settings

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// SettingRepository интерфейс репозитория настроек
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, setting *domain.Setting) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
