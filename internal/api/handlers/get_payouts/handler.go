package get_payouts

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	"github.com/tutorlink/booking-service/internal/domain"
	payoutsService "github.com/tutorlink/booking-service/internal/service/payouts"
)

const (
	msgAccountNotFound = "аккаунт не найден"
	msgNotTutor        = "история выплат доступна только тьютору"
	msgAdminRequired   = "список необработанных выплат доступен только администратору"
	msgUnauthorized    = "требуется аутентификация"
)

type Handler struct {
	service PayoutsService
	logger  Logger
}

func NewHandler(service PayoutsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payouts?pending=true
//
// Without the pending flag a tutor sees their own payout history; with
// it an admin sees every payout awaiting approval.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var payouts []*domain.Payout
	var err error

	if r.URL.Query().Get("pending") == "true" {
		payouts, err = h.service.ListPending(r.Context(), userID)
	} else {
		payouts, err = h.service.History(r.Context(), userID)
	}

	if err != nil {
		switch {
		case errors.Is(err, payoutsService.ErrNotAdmin):
			h.logger.Warn("GET /payouts - Not an admin: account_id=%s", userID)
			handlers.RespondForbidden(w, msgAdminRequired)
		case errors.Is(err, payoutsService.ErrNotTutor):
			handlers.RespondForbidden(w, msgNotTutor)
		case errors.Is(err, payoutsService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)
		default:
			h.logger.Error("GET /payouts - Failed: account_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromPayouts(payouts))
}
