package cancel_record

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HallBookingService/internal/service/records"
	"github.com/m04kA/SMC-HallBookingService/internal/service/records/models"
)

const (
	msgInvalidRecordID = "некорректный ID записи"
	msgNotFound        = "запись не найдена"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgCannotCancel    = "запись уже отменена"
)

type Handler struct {
	service RecordService
	logger  Logger
}

func NewHandler(service RecordService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/records/{recordId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	recordID, err := strconv.ParseInt(mux.Vars(r)["recordId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /records/{id}/cancel - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /records/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}
	record, err := h.service.Cancel(r.Context(), recordID, actor)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrRecordNotFound):
			h.logger.Warn("PATCH /records/{id}/cancel - Record not found: record_id=%d", recordID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, records.ErrAccessDenied):
			h.logger.Warn("PATCH /records/{id}/cancel - Access denied: record_id=%d, user_id=%d", recordID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, records.ErrCannotCancel):
			h.logger.Warn("PATCH /records/{id}/cancel - Cannot cancel: record_id=%d", recordID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /records/{id}/cancel - Failed to cancel record: record_id=%d, error=%v",
				recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /records/{id}/cancel - Record cancelled successfully: record_id=%d, user_id=%d",
		recordID, userID)
	handlers.RespondJSON(w, http.StatusOK, record)
}
