package update_hall_prices

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/halls/models"
)

type HallService interface {
	UpdatePrices(ctx context.Context, hallID int64, req *models.UpdatePricesRequest) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
