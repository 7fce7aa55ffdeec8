package create_hall

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/service/halls"
	"github.com/m04kA/SMC-HallBookingService/internal/service/halls/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.CreateHallRequest
	err error
}

func (f *fakeService) Create(ctx context.Context, req *models.CreateHallRequest) (*models.HallResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HallResponse{ID: 1, Name: req.Name, BasePrice: req.BasePrice}, nil
}

const validBody = `{"name":"Большой","basePrice":1000,"prepaymentPercent":30,"prices":[` +
	`{"comparison":">=","fromLength":120,"type":"per_hour","price":900}]}`

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantService bool
	}{
		{name: "success", body: validBody, wantStatus: http.StatusCreated, wantService: true},
		{name: "malformed json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"name":"Большой","color":"red"}`, wantStatus: http.StatusBadRequest},
		{name: "missing name", body: `{"basePrice":1000}`, wantStatus: http.StatusBadRequest},
		{name: "prepayment over 100", body: `{"name":"Большой","prepaymentPercent":101}`, wantStatus: http.StatusBadRequest},
		{
			name:        "invalid price rule",
			body:        validBody,
			err:         fmt.Errorf("%w: rule 0: unknown comparison", halls.ErrInvalidPriceRule),
			wantStatus:  http.StatusBadRequest,
			wantService: true,
		},
		{
			name:        "invalid input",
			body:        validBody,
			err:         fmt.Errorf("%w: negative base price", halls.ErrInvalidInput),
			wantStatus:  http.StatusBadRequest,
			wantService: true,
		},
		{name: "internal", body: validBody, err: halls.ErrInternal, wantStatus: http.StatusInternalServerError, wantService: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, nopLogger{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/halls", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantService {
				assert.Nil(t, svc.got)
				return
			}
			require.NotNil(t, svc.got)
			assert.Equal(t, "Большой", svc.got.Name)
			assert.Equal(t, int64(1000), svc.got.BasePrice)
			require.Len(t, svc.got.Prices, 1)
			assert.Equal(t, "per_hour", svc.got.Prices[0].Type)
		})
	}
}
