package get_record

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

// Handle GET /api/v1/records/{recordId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	recordID, err := strconv.ParseInt(mux.Vars(r)["recordId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /records/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /records/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Сервис сам проверит, что пользователь владелец записи или администратор
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}
	record, err := h.service.GetByID(r.Context(), recordID, actor)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrRecordNotFound):
			h.logger.Warn("GET /records/{id} - Record not found: record_id=%d", recordID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, records.ErrAccessDenied):
			h.logger.Warn("GET /records/{id} - Access denied: record_id=%d, user_id=%d", recordID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /records/{id} - Failed to get record: record_id=%d, error=%v", recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /records/{id} - Record retrieved successfully: record_id=%d, user_id=%d",
		recordID, userID)
	handlers.RespondJSON(w, http.StatusOK, record)
}
