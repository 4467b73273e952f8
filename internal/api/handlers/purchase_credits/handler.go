package purchase_credits

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	"github.com/tutorlink/booking-service/internal/domain"
	ledgerService "github.com/tutorlink/booking-service/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "количество кредитов должно быть положительным"
	msgAccountNotFound    = "аккаунт не найден"
	msgDuplicatePurchase  = "покупка уже была обработана"
	msgUnauthorized       = "требуется аутентификация"
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

// Handle POST /api/v1/credits/purchase
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req PurchaseCreditsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /credits/purchase - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.ledger.Credit(r.Context(), userID, req.Amount, domain.TxPurchase, req.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, ledgerService.ErrInvalidAmount):
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, ledgerService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)
		case errors.Is(err, ledgerService.ErrDuplicateTransaction):
			h.logger.Warn("POST /credits/purchase - Duplicate purchase: account_id=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePurchase)
		default:
			h.logger.Error("POST /credits/purchase - Failed: account_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	credits, err := h.ledger.Balance(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /credits/purchase - Failed to read balance: account_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /credits/purchase - Credited %d to account_id=%s", req.Amount, userID)
	handlers.RespondJSON(w, http.StatusOK, PurchaseCreditsResponse{Credits: credits})
}
