package coupons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons/models"
	"github.com/m04kA/SMC-HallBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	coupons map[string]*domain.Coupon
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, couponRepo.ErrCouponNotFound
	}
	return c, nil
}

func (f *fakeRepo) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	if _, ok := f.coupons[coupon.Code]; ok {
		return nil, couponRepo.ErrDuplicateCoupon
	}
	f.coupons[coupon.Code] = coupon
	return coupon, nil
}

func TestService_CreateAndGet(t *testing.T) {
	svc := NewService(&fakeRepo{coupons: map[string]*domain.Coupon{}}, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateCouponRequest{Code: " SPRING-25 ", Factor: ptr.Ptr(0.25)})
	require.NoError(t, err)
	assert.Equal(t, "SPRING-25", created.Code)

	got, err := svc.GetByCode(context.Background(), "SPRING-25")
	require.NoError(t, err)
	assert.Equal(t, 0.25, *got.Factor)

	_, err = svc.Create(context.Background(), &models.CreateCouponRequest{Code: "SPRING-25"})
	assert.ErrorIs(t, err, ErrCouponExists)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateCouponRequest
	}{
		{name: "empty code", req: &models.CreateCouponRequest{Code: ""}},
		{name: "spaces inside", req: &models.CreateCouponRequest{Code: "TWO WORDS"}},
		{name: "negative factor", req: &models.CreateCouponRequest{Code: "A", Factor: ptr.Ptr(-0.1)}},
		{name: "factor above one", req: &models.CreateCouponRequest{Code: "A", Factor: ptr.Ptr(1.01)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{coupons: map[string]*domain.Coupon{}}, nopLogger{})
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetMissing(t *testing.T) {
	svc := NewService(&fakeRepo{coupons: map[string]*domain.Coupon{}}, nopLogger{})
	_, err := svc.GetByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}
