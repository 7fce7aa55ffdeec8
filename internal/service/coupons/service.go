package coupons

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons/models"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Service сервис купонов
type Service struct {
	couponRepo CouponRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(couponRepo CouponRepository, logger Logger) *Service {
	return &Service{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// GetByCode получает купон по коду
func (s *Service) GetByCode(ctx context.Context, code string) (*models.CouponResponse, error) {
	s.logger.Info("GetByCode: fetching coupon code=%s", code)

	coupon, err := s.couponRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			s.logger.Warn("GetByCode: coupon code=%s not found", code)
			return nil, ErrCouponNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCoupon(coupon), nil
}

// Create создает купон; коэффициент скидки должен быть в [0, 1]
func (s *Service) Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	code := strings.TrimSpace(req.Code)
	s.logger.Info("Create: creating coupon code=%s", code)

	if !codePattern.MatchString(code) {
		s.logger.Warn("Create: invalid coupon code=%q", code)
		return nil, fmt.Errorf("%w: code must match %s", ErrInvalidInput, codePattern.String())
	}

	if req.Factor != nil && (*req.Factor < 0 || *req.Factor > 1) {
		s.logger.Warn("Create: invalid factor=%v for code=%s", *req.Factor, code)
		return nil, fmt.Errorf("%w: factor must be in [0, 1]", ErrInvalidInput)
	}

	created, err := s.couponRepo.Create(ctx, &domain.Coupon{Code: code, Factor: req.Factor})
	if err != nil {
		if errors.Is(err, couponRepo.ErrDuplicateCoupon) {
			s.logger.Warn("Create: coupon code=%s already exists", code)
			return nil, ErrCouponExists
		}
		s.logger.Error("Create: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: coupon code=%s created", code)
	return models.FromDomainCoupon(created), nil
}
