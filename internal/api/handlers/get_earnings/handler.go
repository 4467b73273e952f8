package get_earnings

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	payoutsService "github.com/tutorlink/booking-service/internal/service/payouts"
)

const (
	msgAccountNotFound = "аккаунт не найден"
	msgNotTutor        = "сводка по заработку доступна только тьютору"
	msgUnauthorized    = "требуется аутентификация"
)

// EarningsResponse HTTP response model
type EarningsResponse struct {
	AvailableCredits int64 `json:"availableCredits"`
	ReservedCredits  int64 `json:"reservedCredits"`
	GrossAmount      int64 `json:"grossAmount"`
	PlatformFee      int64 `json:"platformFee"`
	NetAmount        int64 `json:"netAmount"`
	TotalPaidOut     int64 `json:"totalPaidOut"`
	PendingCredits   int64 `json:"pendingCredits"`
}

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

// Handle GET /api/v1/earnings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	earnings, err := h.service.Earnings(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, payoutsService.ErrNotTutor):
			handlers.RespondForbidden(w, msgNotTutor)
		case errors.Is(err, payoutsService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)
		default:
			h.logger.Error("GET /earnings - Failed: account_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, EarningsResponse{
		AvailableCredits: earnings.AvailableCredits,
		ReservedCredits:  earnings.ReservedCredits,
		GrossAmount:      earnings.GrossAmount,
		PlatformFee:      earnings.PlatformFee,
		NetAmount:        earnings.NetAmount,
		TotalPaidOut:     earnings.TotalPaidOut,
		PendingCredits:   earnings.PendingCredits,
	})
}
