package book_appointment

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	bookAppointment "github.com/tutorlink/booking-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequestFields = "некорректный tutorId, startTime или endTime, ожидается RFC3339"
	msgStudentNotFound      = "студент не найден"
	msgTutorNotFound        = "тьютор не найден"
	msgNotStudent           = "бронировать занятия может только студент"
	msgNotTutor             = "выбранный аккаунт не является тьютором"
	msgTutorNotVerified     = "тьютор не прошел верификацию"
	msgInsufficientCredits  = "недостаточно кредитов"
	msgSlotNotAvailable     = "выбранный слот недоступен"
	msgSlotInPast           = "слот уже начался"
	msgVideoSession         = "не удалось создать видеосессию, кредиты не списаны"
	msgUnauthorized         = "требуется аутентификация"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(studentID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: student_id=%s, tutor_id=%s", studentID, req.TutorID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookAppointment.ErrInsufficientCredits):
			h.logger.Warn("POST /appointments - Insufficient credits: student_id=%s", studentID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientCredits)

		case errors.Is(err, bookAppointment.ErrStudentNotFound):
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, bookAppointment.ErrTutorNotFound):
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, bookAppointment.ErrNotStudent):
			handlers.RespondForbidden(w, msgNotStudent)

		case errors.Is(err, bookAppointment.ErrNotTutor):
			handlers.RespondBadRequest(w, msgNotTutor)

		case errors.Is(err, bookAppointment.ErrTutorNotVerified):
			handlers.RespondBadRequest(w, msgTutorNotVerified)

		case errors.Is(err, bookAppointment.ErrSlotInPast):
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestFields)

		case errors.Is(err, bookAppointment.ErrVideoSession):
			h.logger.Error("POST /appointments - Video session failed: student_id=%s, error=%v", studentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgVideoSession)

		default:
			h.logger.Error("POST /appointments - Failed to book: student_id=%s, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: appointment_id=%s, student_id=%s", result.ID, studentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
