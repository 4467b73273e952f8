package approve_payout

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	payoutsService "github.com/tutorlink/booking-service/internal/service/payouts"
)

const (
	msgInvalidPayoutID     = "некорректный ID выплаты"
	msgPayoutNotFound      = "выплата не найдена"
	msgAdminRequired       = "операция доступна только администратору"
	msgAlreadyProcessed    = "выплата уже обработана"
	msgInsufficientCredits = "на балансе тьютора недостаточно кредитов"
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

// ApproveResponse HTTP response model
type ApproveResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	NetAmount   int64  `json:"netAmount"`
	ProcessedAt string `json:"processedAt,omitempty"`
}

// Handle PATCH /api/v1/payouts/{payoutId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	payoutID, err := uuid.Parse(mux.Vars(r)["payoutId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPayoutID)
		return
	}

	payout, err := h.service.Approve(r.Context(), adminID, payoutID)
	if err != nil {
		switch {
		case errors.Is(err, payoutsService.ErrPayoutNotFound):
			handlers.RespondNotFound(w, msgPayoutNotFound)
		case errors.Is(err, payoutsService.ErrNotAdmin):
			h.logger.Warn("PATCH /payouts/%s/approve - Not an admin: account_id=%s", payoutID, adminID)
			handlers.RespondForbidden(w, msgAdminRequired)
		case errors.Is(err, payoutsService.ErrAlreadyProcessed):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)
		case errors.Is(err, payoutsService.ErrInsufficientCredits):
			h.logger.Warn("PATCH /payouts/%s/approve - Insufficient tutor credits", payoutID)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientCredits)
		case errors.Is(err, payoutsService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgPayoutNotFound)
		default:
			h.logger.Error("PATCH /payouts/%s/approve - Failed: error=%v", payoutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := ApproveResponse{
		ID:        payout.ID.String(),
		Status:    string(payout.Status),
		NetAmount: payout.NetAmount,
	}
	if payout.ProcessedAt != nil {
		resp.ProcessedAt = payout.ProcessedAt.Format(time.RFC3339)
	}

	h.logger.Info("PATCH /payouts/%s/approve - Approved by admin_id=%s", payoutID, adminID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
