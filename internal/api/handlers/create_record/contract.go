package create_record

import (
	"context"

	createRecord "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_record"
)

type CreateRecordUseCase interface {
	Execute(ctx context.Context, req *createRecord.Request) (*createRecord.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
