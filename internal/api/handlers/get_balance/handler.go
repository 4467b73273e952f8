package get_balance

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	ledgerService "github.com/tutorlink/booking-service/internal/service/ledger"
)

const (
	msgUnauthorized    = "требуется аутентификация"
	msgAccountNotFound = "аккаунт не найден"
)

type Handler struct {
	ledger LedgerService
	logger Logger
}

func NewHandler(ledger LedgerService, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/credits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	credits, err := h.ledger.Balance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ledgerService.ErrAccountNotFound) {
			handlers.RespondNotFound(w, msgAccountNotFound)
			return
		}
		h.logger.Error("GET /credits - Failed to get balance: account_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	transactions, err := h.ledger.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /credits - Failed to get history: account_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBalance(credits, transactions))
}
