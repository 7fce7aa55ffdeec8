package calculate_price

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// HallRepository интерфейс репозитория залов (может быть обернут кэшем)
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// PriceEngine движок правил цены
type PriceEngine interface {
	Price(hall *domain.Hall, reservations []domain.Reservation, serviceIDs []int64) (int64, error)
}

// QuotesCounter счетчик рассчитанных цен (prometheus.CounterVec)
type QuotesCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
