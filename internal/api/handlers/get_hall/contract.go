package get_hall

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/halls/models"
)

type HallService interface {
	GetByID(ctx context.Context, id int64) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
