package verify_tutor

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	"github.com/tutorlink/booking-service/internal/domain"
	accountsService "github.com/tutorlink/booking-service/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTutorID     = "некорректный ID тьютора"
	msgInvalidStatus      = "статус должен быть VERIFIED или REJECTED"
	msgTutorNotFound      = "тьютор не найден"
	msgNotTutor           = "аккаунт не является тьютором"
	msgAdminRequired      = "операция доступна только администратору"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tutors/{tutorId}/verification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAdminRequired)
		return
	}

	tutorID, err := uuid.Parse(mux.Vars(r)["tutorId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTutorID)
		return
	}

	var req VerifyTutorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tutors/%s/verification - Invalid request body: %v", tutorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateVerification(r.Context(), adminID, tutorID, domain.VerificationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, accountsService.ErrNotAdmin):
			h.logger.Warn("PATCH /tutors/%s/verification - Not an admin: account_id=%s", tutorID, adminID)
			handlers.RespondForbidden(w, msgAdminRequired)
		case errors.Is(err, accountsService.ErrNotTutor):
			handlers.RespondBadRequest(w, msgNotTutor)
		case errors.Is(err, accountsService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgTutorNotFound)
		default:
			h.logger.Error("PATCH /tutors/%s/verification - Failed: error=%v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tutors/%s/verification - Status set to %s by admin=%s", tutorID, req.Status, adminID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
