package generate_video_token

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
	msgNotParticipant       = "токен доступен только участникам занятия"
	msgNotScheduled         = "запись уже отменена или завершена"
	msgTooEarly             = "подключение откроется за 30 минут до начала"
	msgVideoProvider        = "видеопровайдер временно недоступен"
	msgUnauthorized         = "требуется аутентификация"
)

// TokenResponse HTTP response model
type TokenResponse struct {
	Token string `json:"token"`
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

// Handle POST /api/v1/appointments/{appointmentId}/video-token
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

	token, err := h.service.GenerateVideoToken(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointmentsService.ErrNotParticipant):
			h.logger.Warn("POST /appointments/%s/video-token - Not a participant: account_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgNotParticipant)
		case errors.Is(err, appointmentsService.ErrNotScheduled):
			handlers.RespondError(w, http.StatusConflict, msgNotScheduled)
		case errors.Is(err, appointmentsService.ErrTooEarlyToJoin):
			handlers.RespondError(w, http.StatusConflict, msgTooEarly)
		case errors.Is(err, appointmentsService.ErrVideoToken):
			h.logger.Error("POST /appointments/%s/video-token - Provider failed: %v", appointmentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgVideoProvider)
		default:
			h.logger.Error("POST /appointments/%s/video-token - Failed: error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%s/video-token - Token issued for account_id=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, TokenResponse{Token: token})
}
