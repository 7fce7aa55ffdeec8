package hall

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// HallRepository источник данных о залах (Postgres)
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// Client подмножество команд redis, которые использует кэш
// *redis.Client удовлетворяет этому интерфейсу
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
