package complete_appointment

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
	msgNotTutor             = "завершить занятие может только тьютор"
	msgNotScheduled         = "запись уже отменена или завершена"
	msgTooEarly             = "занятие еще не закончилось"
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

// CompleteResponse HTTP response model
type CompleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Handle PATCH /api/v1/appointments/{appointmentId}/complete
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

	appt, err := h.service.Complete(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointmentsService.ErrNotTutor):
			h.logger.Warn("PATCH /appointments/%s/complete - Not the tutor: account_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgNotTutor)
		case errors.Is(err, appointmentsService.ErrNotScheduled):
			handlers.RespondError(w, http.StatusConflict, msgNotScheduled)
		case errors.Is(err, appointmentsService.ErrTooEarlyToComplete):
			h.logger.Warn("PATCH /appointments/%s/complete - Too early: account_id=%s", appointmentID, userID)
			handlers.RespondError(w, http.StatusConflict, msgTooEarly)
		default:
			h.logger.Error("PATCH /appointments/%s/complete - Failed: error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/complete - Completed by tutor_id=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, CompleteResponse{
		ID:     appt.ID.String(),
		Status: string(appt.Status),
	})
}
