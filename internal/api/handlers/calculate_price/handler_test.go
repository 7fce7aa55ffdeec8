package calculate_price

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculatePrice "github.com/m04kA/SMC-HallBookingService/internal/usecase/calculate_price"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *calculatePrice.Request
	resp *calculatePrice.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *calculatePrice.Request) (*calculatePrice.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/halls/3/price", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"hallId": "3"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	code := "SPRING"
	uc := &fakeUseCase{resp: &calculatePrice.Response{HallID: 3, Subtotal: 10000, Price: 7500, Prepayment: 2250, CouponCode: &code}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"reservations":[{"start_at":1710147600,"length":120}],"coupon":"SPRING"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.HallID)
	require.Len(t, uc.got.Reservations, 1)
	assert.Equal(t, int64(1710147600), uc.got.Reservations[0].StartAt)
	assert.Equal(t, 120, uc.got.Reservations[0].Length)
	require.NotNil(t, uc.got.CouponCode)
	assert.Equal(t, "SPRING", *uc.got.CouponCode)

	var body PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7500), body.Price)
	assert.Equal(t, int64(2250), body.Prepayment)
	assert.Equal(t, int64(10000), body.Subtotal)
}

func TestHandler_Errors(t *testing.T) {
	validBody := `{"reservations":[{"start_at":1710147600,"length":60}]}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"reservations":[{"start_at":1,"length":60}],"foo":1}`, wantStatus: http.StatusBadRequest},
		{name: "no reservations", body: `{"reservations":[]}`, wantStatus: http.StatusBadRequest},
		{name: "hall not found", body: validBody, err: calculatePrice.ErrHallNotFound, wantStatus: http.StatusNotFound},
		{name: "coupon not found", body: validBody, err: calculatePrice.ErrCouponNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", body: validBody, err: calculatePrice.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "broken price rule", body: validBody, err: calculatePrice.ErrInvalidPriceRule, wantStatus: http.StatusInternalServerError},
		{name: "broken coupon", body: validBody, err: calculatePrice.ErrInvalidCoupon, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := doRequest(h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
