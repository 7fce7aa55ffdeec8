package get_hall_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	settingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/setting"
	"github.com/m04kA/SMC-HallBookingService/internal/service/availability"
)

// UseCase use case получения доступности зала на неделю
type UseCase struct {
	hallRepo        HallRepository
	reservationRepo ReservationRepository
	settingRepo     SettingRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс сервера
func NewUseCase(
	hallRepo HallRepository,
	reservationRepo ReservationRepository,
	settingRepo SettingRepository,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		hallRepo:        hallRepo,
		reservationRepo: reservationRepo,
		settingRepo:     settingRepo,
		timeProvider:    &RealTimeProvider{Location: loc},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetHallAvailability: hall=%d, year=%d, week=%d", req.HallID, req.Year, req.Week)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetHallAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе сервера
	now := uc.timeProvider.Now()

	// 3. Проверяем существование зала
	if _, err := uc.hallRepo.GetByID(ctx, req.HallID); err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("GetHallAvailability: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("GetHallAvailability: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 4. Даты недели
	week, err := availability.ResolveWeek(req.Year, req.Week, now.Location())
	if err != nil {
		var calendarErr *availability.CalendarResolutionError
		if errors.As(err, &calendarErr) {
			uc.logger.Warn("GetHallAvailability: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidWeek, err)
		}
		return nil, fmt.Errorf("%w: resolve week: %v", ErrInternal, err)
	}

	// 5. Резервации зала за неделю [пн 00:00, следующий пн 00:00)
	reservations, err := uc.reservationRepo.FindByHallAndRange(ctx, req.HallID, week.Start().Unix(), week.End().Unix())
	if err != nil {
		uc.logger.Error("GetHallAvailability: failed to get reservations hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Глубина бронирования (в месяцах), при отсутствии настройки - значение по умолчанию
	maxRange, err := uc.maxBookingRange(ctx)
	if err != nil {
		return nil, err
	}

	// 7. Окна, недоступные для бронирования
	limitations := availability.Limitations(week.Dates, now, maxRange)

	uc.logger.Info("GetHallAvailability: hall=%d, week=%d-W%02d, reservations=%d, limitations=%d",
		req.HallID, week.Year, week.Week, len(reservations), len(limitations))

	return &Response{
		HallID:       req.HallID,
		Year:         week.Year,
		Week:         week.Week,
		Dates:        week.Dates,
		Reservations: reservations,
		Limitations:  limitations,
	}, nil
}

func (uc *UseCase) maxBookingRange(ctx context.Context) (int, error) {
	setting, err := uc.settingRepo.GetByKey(ctx, domain.SettingCalendarMaxBookingRange)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return domain.DefaultMaxBookingRangeMonths, nil
		}
		uc.logger.Error("GetHallAvailability: failed to get setting %s: %v", domain.SettingCalendarMaxBookingRange, err)
		return 0, fmt.Errorf("%w: failed to get setting: %v", ErrInternal, err)
	}
	return domain.BookingRangeMonths(setting), nil
}
