package update_setting

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/settings/models"
)

type SettingService interface {
	Set(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
