package halls

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	"github.com/m04kA/SMC-HallBookingService/internal/service/halls/models"
)

// Service сервис для работы с залами и их правилами цены
type Service struct {
	hallRepo  HallRepository
	cache     HallCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса залов
// cache может быть nil, если redis выключен
func NewService(
	hallRepo HallRepository,
	cache HallCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hallRepo:  hallRepo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает зал с правилами цены
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HallResponse, error) {
	s.logger.Info("GetByID: fetching hall id=%d", id)

	var (
		hall *domain.Hall
		err  error
	)
	if s.cache != nil {
		hall, err = s.cache.GetByID(ctx, id)
	} else {
		hall, err = s.hallRepo.GetByID(ctx, id)
	}

	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("GetByID: hall id=%d not found", id)
			return nil, ErrHallNotFound
		}
		s.logger.Error("GetByID: repository error for hall id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHall(hall), nil
}

// List получает все залы (без правил цены)
func (s *Service) List(ctx context.Context) (*models.HallListResponse, error) {
	halls, err := s.hallRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d halls", len(halls))
	return models.FromDomainHallList(halls), nil
}

// Create создает зал вместе с правилами цены в одной транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateHallRequest) (*models.HallResponse, error) {
	s.logger.Info("Create: creating hall name=%q, rules=%d", req.Name, len(req.Prices))

	hall := &domain.Hall{
		Name:              req.Name,
		BasePrice:         req.BasePrice,
		PrepaymentPercent: req.PrepaymentPercent,
		Prices:            models.ToDomainRules(0, req.Prices),
	}

	if err := validateHall(hall); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Hall
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.hallRepo.Create(txCtx, hall)
		return err
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: hall id=%d created", created.ID)
	return models.FromDomainHall(created), nil
}

// UpdatePrices заменяет правила цены зала и сбрасывает кэш
func (s *Service) UpdatePrices(ctx context.Context, hallID int64, req *models.UpdatePricesRequest) (*models.HallResponse, error) {
	s.logger.Info("UpdatePrices: hall id=%d, rules=%d", hallID, len(req.Prices))

	rules := models.ToDomainRules(hallID, req.Prices)
	if err := validateRules(rules); err != nil {
		s.logger.Warn("UpdatePrices: validation failed for hall id=%d: %v", hallID, err)
		return nil, err
	}

	var updated *domain.Hall
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.hallRepo.ReplacePrices(txCtx, hallID, rules); err != nil {
			return err
		}
		var err error
		updated, err = s.hallRepo.GetByID(txCtx, hallID)
		return err
	})
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("UpdatePrices: hall id=%d not found", hallID)
			return nil, ErrHallNotFound
		}
		s.logger.Error("UpdatePrices: repository error for hall id=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: UpdatePrices - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, hallID); err != nil {
			s.logger.Warn("UpdatePrices: %v", err)
		}
	}

	s.logger.Info("UpdatePrices: hall id=%d now has %d rules", hallID, len(updated.Prices))
	return models.FromDomainHall(updated), nil
}
