package get_record

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/records/models"
)

type RecordService interface {
	GetByID(ctx context.Context, id int64, actor models.Actor) (*models.RecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
