package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	appointmentsService "github.com/tutorlink/booking-service/internal/service/appointments"
)

const (
	msgUnauthorized    = "требуется аутентификация"
	msgAccountNotFound = "аккаунт не найден"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointments, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrAccountNotFound) {
			handlers.RespondNotFound(w, msgAccountNotFound)
			return
		}
		h.logger.Error("GET /appointments - Failed: account_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromAppointments(appointments))
}
