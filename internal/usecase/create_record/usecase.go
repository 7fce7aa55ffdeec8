package create_record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/infra/queue"
	settingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/setting"
	calculatePrice "github.com/m04kA/SMC-HallBookingService/internal/usecase/calculate_price"
)

// UseCase use case создания записи с резервациями
type UseCase struct {
	recordRepo   RecordRepository
	settingRepo  SettingRepository
	calculator   PriceCalculator
	publisher    EventPublisher
	txManager    TransactionManager
	created      RecordsCounter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// created может быть nil, если метрики выключены
func NewUseCase(
	recordRepo RecordRepository,
	settingRepo SettingRepository,
	calculator PriceCalculator,
	publisher EventPublisher,
	txManager TransactionManager,
	created RecordsCounter,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		recordRepo:   recordRepo,
		settingRepo:  settingRepo,
		calculator:   calculator,
		publisher:    publisher,
		txManager:    txManager,
		created:      created,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Проверка пересечений и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecord: user=%d, hall=%d, reservations=%d", req.UserID, req.HallID, len(req.Reservations))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRecord: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Считаем стоимость (зал и купон проверяются здесь же)
	quote, err := uc.calculator.Execute(ctx, &calculatePrice.Request{
		HallID:       req.HallID,
		Reservations: req.Reservations,
		ServiceIDs:   req.ServiceIDs,
		CouponCode:   req.CouponCode,
	})
	if err != nil {
		return nil, uc.mapPriceError(req, err)
	}

	var created *domain.Record

	// 4. Сериализуемая транзакция: ограничения, пересечения, вставка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Глубина бронирования
		maxRange, err := uc.maxBookingRange(txCtx)
		if err != nil {
			return err
		}

		// 4.2. Окна недоступности
		if err := validateLimitations(req.Reservations, now, maxRange); err != nil {
			uc.logger.Warn("CreateRecord: user=%d, hall=%d: %v", req.UserID, req.HallID, err)
			return err
		}

		// 4.3. Пересечения с существующими резервациями зала
		from, to := searchRange(req.Reservations)
		existing, err := uc.recordRepo.FindByHallAndRange(txCtx, req.HallID, from, to)
		if err != nil {
			uc.logger.Error("CreateRecord: failed to get reservations hall=%d: %v", req.HallID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if err := validateNoConflicts(req.Reservations, existing); err != nil {
			uc.logger.Warn("CreateRecord: user=%d, hall=%d: %v", req.UserID, req.HallID, err)
			return err
		}

		// 4.4. Создаем запись
		record := &domain.Record{
			UserID:       req.UserID,
			HallID:       req.HallID,
			Reservations: req.Reservations,
			ServiceIDs:   req.ServiceIDs,
			CouponCode:   quote.CouponCode,
			Price:        quote.Price,
			Prepayment:   quote.Prepayment,
			Status:       domain.RecordStatusPending,
			Comment:      req.Comment,
		}

		created, err = uc.recordRepo.CreateRecord(txCtx, record)
		if err != nil {
			uc.logger.Error("CreateRecord: failed to create record: %v", err)
			return fmt.Errorf("%w: failed to create record: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTimeNotAvailable) || errors.Is(err, ErrReservationConflict) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateRecord: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 5. Событие и метрика уже после коммита, ошибка публикации запись не откатывает
	uc.publishCreated(ctx, created)
	if uc.created != nil {
		uc.created.WithLabelValues().Inc()
	}

	uc.logger.Info("CreateRecord: record id=%d created, user=%d, hall=%d, price=%d, prepayment=%d",
		created.ID, created.UserID, created.HallID, created.Price, created.Prepayment)

	return toResponse(created), nil
}

func (uc *UseCase) mapPriceError(req *Request, err error) error {
	switch {
	case errors.Is(err, calculatePrice.ErrHallNotFound):
		return ErrHallNotFound
	case errors.Is(err, calculatePrice.ErrCouponNotFound):
		return ErrCouponNotFound
	case errors.Is(err, calculatePrice.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateRecord: failed to calculate price user=%d, hall=%d: %v", req.UserID, req.HallID, err)
		return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}
}

func (uc *UseCase) maxBookingRange(ctx context.Context) (int, error) {
	setting, err := uc.settingRepo.GetByKey(ctx, domain.SettingCalendarMaxBookingRange)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return domain.DefaultMaxBookingRangeMonths, nil
		}
		uc.logger.Error("CreateRecord: failed to get setting %s: %v", domain.SettingCalendarMaxBookingRange, err)
		return 0, fmt.Errorf("%w: failed to get setting: %v", ErrInternal, err)
	}
	return domain.BookingRangeMonths(setting), nil
}

func (uc *UseCase) publishCreated(ctx context.Context, record *domain.Record) {
	event := queue.RecordCreatedEvent{
		RecordID:     record.ID,
		HallID:       record.HallID,
		UserID:       record.UserID,
		Price:        record.Price,
		Prepayment:   record.Prepayment,
		Reservations: make([]queue.ReservationEvent, 0, len(record.Reservations)),
		CreatedAt:    record.CreatedAt,
	}
	for _, r := range record.Reservations {
		event.Reservations = append(event.Reservations, queue.ReservationEvent{StartAt: r.StartAt, Length: r.Length})
	}

	if err := uc.publisher.PublishRecordCreated(ctx, event); err != nil {
		uc.logger.Error("CreateRecord: failed to publish event for record id=%d: %v", record.ID, err)
	}
}

func toResponse(r *domain.Record) *Response {
	return &Response{
		ID:           r.ID,
		UserID:       r.UserID,
		HallID:       r.HallID,
		Reservations: r.Reservations,
		ServiceIDs:   r.ServiceIDs,
		CouponCode:   r.CouponCode,
		Price:        r.Price,
		Prepayment:   r.Prepayment,
		Status:       r.Status,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
