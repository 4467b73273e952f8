package set_availability

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	availabilityService "github.com/tutorlink/booking-service/internal/service/availability"
	"github.com/tutorlink/booking-service/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgTutorNotFound      = "тьютор не найден"
	msgNotTutor           = "окно доступности может задать только тьютор"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	window, err := h.service.SetWindow(r.Context(), userID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /availability - Invalid range %s-%s: tutor_id=%s", start, end, userID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		case errors.Is(err, availabilityService.ErrTutorNotFound):
			handlers.RespondNotFound(w, msgTutorNotFound)
		case errors.Is(err, availabilityService.ErrNotTutor):
			handlers.RespondForbidden(w, msgNotTutor)
		default:
			h.logger.Error("PUT /availability - Failed: tutor_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Window %s-%s set: tutor_id=%s", start, end, userID)
	handlers.RespondJSON(w, http.StatusOK, FromWindow(window))
}
