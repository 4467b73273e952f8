package add_appointment_notes

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotesRequired        = "текст заметки обязателен"
	msgAppointmentNotFound  = "запись не найдена"
	msgNotTutor             = "добавлять заметки может только тьютор"
	msgUnauthorized         = "требуется аутентификация"
)

// AddNotesRequest HTTP request model
type AddNotesRequest struct {
	Notes string `json:"notes"`
}

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

// Handle PATCH /api/v1/appointments/{appointmentId}/notes
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

	var req AddNotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/notes - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Notes == "" {
		handlers.RespondBadRequest(w, msgNotesRequired)
		return
	}

	if err := h.service.AddNotes(r.Context(), appointmentID, userID, req.Notes); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointmentsService.ErrNotTutor):
			h.logger.Warn("PATCH /appointments/%s/notes - Not the tutor: account_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgNotTutor)
		default:
			h.logger.Error("PATCH /appointments/%s/notes - Failed: error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/notes - Notes saved by tutor_id=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
