package cancel_record

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/service/records"
	"github.com/m04kA/SMC-HallBookingService/internal/service/records/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	actor models.Actor
	err   error
}

func (f *fakeService) Cancel(ctx context.Context, id int64, actor models.Actor) (*models.RecordResponse, error) {
	f.actor = actor
	if f.err != nil {
		return nil, f.err
	}
	return &models.RecordResponse{ID: id, Status: string(domain.RecordStatusCancelled)}, nil
}

func doRequest(h *Handler, recordID string, userID int64, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/records/"+recordID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"recordId": recordID})
	if userID > 0 {
		req = req.WithContext(middleware.WithIdentity(req.Context(), userID, role))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_PassesAdminFlag(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "5", 1, domain.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Actor{UserID: 1, IsAdmin: true}, svc.actor)

	rec = doRequest(h, "5", 7, domain.RoleClient)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Actor{UserID: 7}, svc.actor)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		recordID   string
		userID     int64
		err        error
		wantStatus int
	}{
		{name: "bad id", recordID: "x", userID: 7, wantStatus: http.StatusBadRequest},
		{name: "no identity", recordID: "5", wantStatus: http.StatusUnauthorized},
		{name: "not found", recordID: "5", userID: 7, err: records.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "not owner", recordID: "5", userID: 7, err: records.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already cancelled", recordID: "5", userID: 7, err: records.ErrCannotCancel, wantStatus: http.StatusBadRequest},
		{name: "internal", recordID: "5", userID: 7, err: records.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})
			rec := doRequest(h, tt.recordID, tt.userID, domain.RoleClient)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
