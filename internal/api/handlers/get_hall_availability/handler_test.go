package get_hall_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	getHallAvailability "github.com/m04kA/SMC-HallBookingService/internal/usecase/get_hall_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getHallAvailability.Request
	resp *getHallAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getHallAvailability.Request) (*getHallAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

func weekResponse() *getHallAvailability.Response {
	var dates [7]time.Time
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return &getHallAvailability.Response{
		HallID:       1,
		Year:         2024,
		Week:         11,
		Dates:        dates,
		Reservations: []domain.Reservation{{StartAt: 1710147600, Length: 60}},
		Limitations:  []domain.Window{{StartAt: 1710115200, Length: 1440}},
	}
}

func doRequest(h *Handler, hallID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/halls/%s/availability?%s", hallID, query), nil)
	req = mux.SetURLVars(req, map[string]string{"hallId": hallID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: weekResponse()}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "1", "year=2024&week=11")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.HallID)
	assert.Equal(t, 2024, uc.got.Year)
	assert.Equal(t, 11, uc.got.Week)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	dates := body["dates"].([]interface{})
	require.Len(t, dates, 7)
	assert.Equal(t, "2024-03-11", dates[0])
	assert.Equal(t, "2024-03-17", dates[6])

	reservations := body["reservations"].([]interface{})
	require.Len(t, reservations, 1)
	first := reservations[0].(map[string]interface{})
	assert.Equal(t, float64(1710147600), first["start_at"])
	assert.Equal(t, float64(60), first["length"])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		hallID     string
		query      string
		err        error
		wantStatus int
	}{
		{name: "bad hall id", hallID: "abc", query: "year=2024&week=11", wantStatus: http.StatusBadRequest},
		{name: "missing year", hallID: "1", query: "week=11", wantStatus: http.StatusBadRequest},
		{name: "bad week", hallID: "1", query: "year=2024&week=x", wantStatus: http.StatusBadRequest},
		{name: "hall not found", hallID: "1", query: "year=2024&week=11", err: getHallAvailability.ErrHallNotFound, wantStatus: http.StatusNotFound},
		{name: "week out of calendar", hallID: "1", query: "year=2024&week=99", err: getHallAvailability.ErrInvalidWeek, wantStatus: http.StatusBadRequest},
		{name: "internal", hallID: "1", query: "year=2024&week=11", err: getHallAvailability.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := doRequest(h, tt.hallID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
