package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/domain"
	getAvailableSlots "github.com/tutorlink/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidTutorID   = "некорректный ID тьютора"
	msgInvalidDays      = "некорректное значение параметра days"
	msgTutorNotFound    = "тьютор не найден"
	msgNotTutor         = "аккаунт не является тьютором"
	msgTutorNotVerified = "тьютор не прошел верификацию"
	msgNoAvailability   = "тьютор не настроил окно доступности"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tutors/{tutorId}/available-slots?days=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID, err := uuid.Parse(mux.Vars(r)["tutorId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTutorID)
		return
	}

	horizonDays := domain.DefaultHorizonDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		horizonDays, err = strconv.Atoi(raw)
		if err != nil || horizonDays < 0 {
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TutorID:     tutorID,
		HorizonDays: horizonDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTutorNotFound):
			handlers.RespondNotFound(w, msgTutorNotFound)
		case errors.Is(err, getAvailableSlots.ErrNotTutor):
			handlers.RespondBadRequest(w, msgNotTutor)
		case errors.Is(err, getAvailableSlots.ErrTutorNotVerified):
			h.logger.Warn("GET /tutors/%s/available-slots - Tutor not verified", tutorID)
			handlers.RespondBadRequest(w, msgTutorNotVerified)
		case errors.Is(err, getAvailableSlots.ErrNoAvailability):
			handlers.RespondNotFound(w, msgNoAvailability)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDays)
		default:
			h.logger.Error("GET /tutors/%s/available-slots - Failed: %v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
