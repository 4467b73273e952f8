package request_payout

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	payoutsService "github.com/tutorlink/booking-service/internal/service/payouts"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidAmount       = "количество кредитов должно быть положительным"
	msgPaypalEmailRequired = "paypalEmail обязателен"
	msgNotTutor            = "запросить выплату может только тьютор"
	msgAccountNotFound     = "аккаунт не найден"
	msgPendingExists       = "предыдущая выплата еще не обработана"
	msgInsufficientCredits = "недостаточно кредитов для выплаты"
	msgUnauthorized        = "требуется аутентификация"
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

// Handle POST /api/v1/payouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req RequestPayoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	payout, err := h.service.Request(r.Context(), userID, req.Credits, req.PaypalEmail)
	if err != nil {
		switch {
		case errors.Is(err, payoutsService.ErrInvalidAmount):
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, payoutsService.ErrPaypalEmailRequired):
			handlers.RespondBadRequest(w, msgPaypalEmailRequired)
		case errors.Is(err, payoutsService.ErrNotTutor):
			handlers.RespondForbidden(w, msgNotTutor)
		case errors.Is(err, payoutsService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)
		case errors.Is(err, payoutsService.ErrPendingExists):
			h.logger.Warn("POST /payouts - Pending payout exists: tutor_id=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgPendingExists)
		case errors.Is(err, payoutsService.ErrInsufficientCredits):
			h.logger.Warn("POST /payouts - Insufficient credits: tutor_id=%s", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientCredits)
		default:
			h.logger.Error("POST /payouts - Failed: tutor_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payouts - Payout requested: payout_id=%s, tutor_id=%s, credits=%d",
		payout.ID, userID, payout.Credits)
	handlers.RespondJSON(w, http.StatusCreated, FromPayout(payout))
}
