package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	appointmentsService "github.com/tutorlink/booking-service/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgNotParticipant       = "отменить запись может только ее участник"
	msgNotScheduled         = "запись уже отменена или завершена"
	msgUnauthorized         = "требуется аутентификация"
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

// CancelResponse HTTP response model
type CancelResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appt, err := h.service.Cancel(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointmentsService.ErrNotParticipant):
			h.logger.Warn("PATCH /appointments/%s/cancel - Not a participant: account_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgNotParticipant)
		case errors.Is(err, appointmentsService.ErrNotScheduled):
			handlers.RespondError(w, http.StatusConflict, msgNotScheduled)
		default:
			h.logger.Error("PATCH /appointments/%s/cancel - Failed: error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/cancel - Cancelled by account_id=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		ID:     appt.ID.String(),
		Status: string(appt.Status),
	})
}
