package get_hall_availability

import (
	"context"

	getHallAvailability "github.com/m04kA/SMC-HallBookingService/internal/usecase/get_hall_availability"
)

type GetHallAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getHallAvailability.Request) (*getHallAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
