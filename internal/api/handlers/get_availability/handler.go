package get_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	availabilityService "github.com/tutorlink/booking-service/internal/service/availability"
)

const (
	msgInvalidTutorID = "некорректный ID тьютора"
	msgTutorNotFound  = "тьютор не найден"
	msgNoAvailability = "тьютор не настроил окно доступности"
	msgNotTutor       = "аккаунт не является тьютором"
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

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TutorID   string `json:"tutorId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// Handle GET /api/v1/tutors/{tutorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID, err := uuid.Parse(mux.Vars(r)["tutorId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTutorID)
		return
	}

	window, err := h.service.GetWindow(r.Context(), tutorID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrNoAvailability):
			handlers.RespondNotFound(w, msgNoAvailability)
		case errors.Is(err, availabilityService.ErrTutorNotFound):
			handlers.RespondNotFound(w, msgTutorNotFound)
		case errors.Is(err, availabilityService.ErrNotTutor):
			handlers.RespondBadRequest(w, msgNotTutor)
		default:
			h.logger.Error("GET /tutors/%s/availability - Failed: %v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		TutorID:   window.TutorID.String(),
		StartTime: window.StartTime.String(),
		EndTime:   window.EndTime.String(),
		Status:    string(window.Status),
	})
}
