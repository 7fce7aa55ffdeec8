package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	settingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/setting"
	"github.com/m04kA/SMC-HallBookingService/internal/service/settings/models"
)

// Service сервис глобальных настроек
type Service struct {
	settingRepo SettingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingRepo SettingRepository, logger Logger) *Service {
	return &Service{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Get возвращает настройку; отсутствующая настройка отдается со значением по умолчанию
func (s *Service) Get(ctx context.Context, key string) (*models.SettingResponse, error) {
	s.logger.Info("Get: fetching setting key=%s", key)

	def, ok := defaultValue(key)
	if !ok {
		s.logger.Warn("Get: unknown setting key=%s", key)
		return nil, ErrUnknownSetting
	}

	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return &models.SettingResponse{Key: key, Value: def, IsDefault: true}, nil
		}
		s.logger.Error("Get: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return &models.SettingResponse{Key: setting.Key, Value: setting.Value}, nil
}

// Set сохраняет значение настройки после проверки
func (s *Service) Set(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error) {
	s.logger.Info("Set: updating setting key=%s value=%q", key, req.Value)

	if _, ok := defaultValue(key); !ok {
		s.logger.Warn("Set: unknown setting key=%s", key)
		return nil, ErrUnknownSetting
	}

	value, err := validateValue(key, req.Value)
	if err != nil {
		s.logger.Warn("Set: validation failed for key=%s: %v", key, err)
		return nil, err
	}

	setting := &domain.Setting{Key: key, Value: value}
	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		s.logger.Error("Set: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: setting key=%s updated", key)
	return &models.SettingResponse{Key: key, Value: value}, nil
}

// defaultValue значение по умолчанию для поддерживаемых ключей
func defaultValue(key string) (string, bool) {
	switch key {
	case domain.SettingCalendarMaxBookingRange:
		return strconv.Itoa(domain.DefaultMaxBookingRangeMonths), true
	}
	return "", false
}

func validateValue(key, raw string) (string, error) {
	switch key {
	case domain.SettingCalendarMaxBookingRange:
		months, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "", fmt.Errorf("%w: %s must be an integer", ErrInvalidInput, key)
		}
		if months < domain.MinBookingRangeMonths || months > domain.MaxBookingRangeMonths {
			return "", fmt.Errorf("%w: %s must be in [%d, %d]",
				ErrInvalidInput, key, domain.MinBookingRangeMonths, domain.MaxBookingRangeMonths)
		}
		return strconv.Itoa(months), nil
	}
	return "", ErrUnknownSetting
}
