package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HallBookingService/internal/service/records/models"
)

// Service сервис для работы с записями
type Service struct {
	recordRepo RecordRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(recordRepo RecordRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		recordRepo: recordRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает запись по ID
// Видеть запись может только её владелец или администратор
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.RecordResponse, error) {
	s.logger.Info("GetByID: fetching record id=%d for user=%d", id, actor.UserID)

	record, err := s.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(record, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to record id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainRecord(record), nil
}

// Cancel отменяет запись, её резервации освобождают время зала
// Отменить может владелец или администратор, только из статусов pending и confirmed
func (s *Service) Cancel(ctx context.Context, id int64, actor models.Actor) (*models.RecordResponse, error) {
	s.logger.Info("Cancel: cancelling record id=%d by user=%d", id, actor.UserID)

	var cancelled *domain.Record
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		record, err := s.getRecord(txCtx, id)
		if err != nil {
			return err
		}

		if err := checkAccess(record, actor); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to record id=%d", actor.UserID, id)
			return err
		}

		if !record.CanBeCancelled() {
			s.logger.Warn("Cancel: record id=%d cannot be cancelled, status=%s", id, record.Status)
			return ErrCannotCancel
		}

		if err := s.recordRepo.UpdateStatus(txCtx, id, domain.RecordStatusCancelled); err != nil {
			if errors.Is(err, reservationRepo.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			s.logger.Error("Cancel: repository error for record id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		record.Status = domain.RecordStatusCancelled
		cancelled = record
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrAccessDenied) ||
			errors.Is(err, ErrCannotCancel) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("Cancel: transaction failed for record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: record id=%d cancelled", id)
	return models.FromDomainRecord(cancelled), nil
}

func (s *Service) getRecord(ctx context.Context, id int64) (*domain.Record, error) {
	record, err := s.recordRepo.GetRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrRecordNotFound) {
			s.logger.Warn("record id=%d not found", id)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("repository error for record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return record, nil
}

// checkAccess владелец записи или администратор
func checkAccess(record *domain.Record, actor models.Actor) error {
	if actor.IsAdmin || record.UserID == actor.UserID {
		return nil
	}
	return ErrAccessDenied
}
