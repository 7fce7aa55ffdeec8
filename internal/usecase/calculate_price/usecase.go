package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/coupon"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	"github.com/m04kA/SMC-HallBookingService/internal/service/pricing"
)

const (
	couponLabelNone    = "none"
	couponLabelApplied = "applied"
)

// UseCase use case расчета стоимости набора резерваций
type UseCase struct {
	hallRepo   HallRepository
	couponRepo CouponRepository
	engine     PriceEngine
	quotes     QuotesCounter
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
// quotes может быть nil, если метрики выключены
func NewUseCase(
	hallRepo HallRepository,
	couponRepo CouponRepository,
	engine PriceEngine,
	quotes QuotesCounter,
	logger Logger,
) *UseCase {
	return &UseCase{
		hallRepo:   hallRepo,
		couponRepo: couponRepo,
		engine:     engine,
		quotes:     quotes,
		logger:     logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: hall=%d, reservations=%d, services=%v",
		req.HallID, len(req.Reservations), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем зал с правилами цены
	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CalculatePrice: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 3. Стоимость по правилам зала
	subtotal, err := uc.engine.Price(hall, req.Reservations, req.ServiceIDs)
	if err != nil {
		var ruleErr *pricing.InvalidPriceRuleError
		if errors.As(err, &ruleErr) {
			uc.logger.Error("CalculatePrice: hall id=%d has broken price rule: %v", req.HallID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPriceRule, err)
		}
		uc.logger.Error("CalculatePrice: failed to price hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to price: %v", ErrInternal, err)
	}

	// 4. Купон (если указан)
	var coupon *domain.Coupon
	if req.CouponCode != nil {
		code := strings.TrimSpace(*req.CouponCode)
		coupon, err = uc.couponRepo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, couponRepo.ErrCouponNotFound) {
				uc.logger.Warn("CalculatePrice: coupon code=%s not found", code)
				return nil, ErrCouponNotFound
			}
			uc.logger.Error("CalculatePrice: failed to get coupon code=%s: %v", code, err)
			return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
		}

		if err := validateCoupon(coupon); err != nil {
			uc.logger.Error("CalculatePrice: %v", err)
			return nil, err
		}
	}

	// 5. Скидка и предоплата
	price := pricing.ApplyCoupon(subtotal, coupon)
	prepayment := pricing.Prepayment(price, hall.PrepaymentPercent)

	uc.observeQuote(coupon != nil)

	uc.logger.Info("CalculatePrice: hall=%d, subtotal=%d, price=%d, prepayment=%d",
		req.HallID, subtotal, price, prepayment)

	resp := &Response{
		HallID:     req.HallID,
		Subtotal:   subtotal,
		Price:      price,
		Prepayment: prepayment,
	}
	if coupon != nil {
		resp.CouponCode = &coupon.Code
	}

	return resp, nil
}

func (uc *UseCase) observeQuote(withCoupon bool) {
	if uc.quotes == nil {
		return
	}
	label := couponLabelNone
	if withCoupon {
		label = couponLabelApplied
	}
	uc.quotes.WithLabelValues(label).Inc()
}
