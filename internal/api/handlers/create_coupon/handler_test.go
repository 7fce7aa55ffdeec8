package create_coupon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons"
	"github.com/m04kA/SMC-HallBookingService/internal/service/coupons/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.CreateCouponRequest
	err error
}

func (f *fakeService) Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.CouponResponse{Code: req.Code, Factor: req.Factor}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantService bool
	}{
		{name: "success", body: `{"code":"SPRING","factor":0.9}`, wantStatus: http.StatusCreated, wantService: true},
		{name: "without factor", body: `{"code":"FREE"}`, wantStatus: http.StatusCreated, wantService: true},
		{name: "malformed json", body: `{"code":`, wantStatus: http.StatusBadRequest},
		{name: "missing code", body: `{"factor":0.5}`, wantStatus: http.StatusBadRequest},
		{name: "factor above one", body: `{"code":"SPRING","factor":1.5}`, wantStatus: http.StatusBadRequest},
		{
			name:        "duplicate code",
			body:        `{"code":"SPRING","factor":0.9}`,
			err:         fmt.Errorf("%w: code=SPRING", coupons.ErrCouponExists),
			wantStatus:  http.StatusConflict,
			wantService: true,
		},
		{
			name:        "invalid input",
			body:        `{"code":"SPRING","factor":0.9}`,
			err:         coupons.ErrInvalidInput,
			wantStatus:  http.StatusBadRequest,
			wantService: true,
		},
		{
			name:        "internal",
			body:        `{"code":"SPRING","factor":0.9}`,
			err:         coupons.ErrInternal,
			wantStatus:  http.StatusInternalServerError,
			wantService: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, nopLogger{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/coupons", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantService {
				assert.Nil(t, svc.got)
				return
			}
			require.NotNil(t, svc.got)
			assert.NotEmpty(t, svc.got.Code)
		})
	}
}
