package list_tutors

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	accountsService "github.com/tutorlink/booking-service/internal/service/accounts"
)

const (
	msgAdminRequired = "список неверифицированных тьюторов доступен только администратору"
	msgUnauthorized  = "требуется аутентификация"
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

// Handle GET /api/v1/tutors?specialty=math
//
// The pending=true flag switches to the admin view of tutors awaiting
// verification; the default view lists VERIFIED tutors only.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("pending") == "true" {
		h.handlePending(w, r)
		return
	}

	var specialty *string
	if s := r.URL.Query().Get("specialty"); s != "" {
		specialty = &s
	}

	tutors, err := h.service.ListTutors(r.Context(), specialty)
	if err != nil {
		h.logger.Error("GET /tutors - Failed to list tutors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromAccounts(tutors))
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	tutors, err := h.service.ListPendingTutors(r.Context(), adminID)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrNotAdmin), errors.Is(err, accountsService.ErrAccountNotFound):
			h.logger.Warn("GET /tutors?pending=true - Not an admin: account_id=%s", adminID)
			handlers.RespondForbidden(w, msgAdminRequired)
		default:
			h.logger.Error("GET /tutors?pending=true - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromAccounts(tutors))
}
