package register_account

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	accountsService "github.com/tutorlink/booking-service/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNameRequired       = "имя обязательно"
	msgEmailRequired      = "email обязателен"
	msgDuplicateEmail     = "email уже зарегистрирован"
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

// Handle POST /api/v1/accounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" {
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}
	if req.Email == "" {
		handlers.RespondBadRequest(w, msgEmailRequired)
		return
	}

	acc, err := h.service.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrDuplicateEmail):
			h.logger.Warn("POST /accounts - Duplicate email: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)
		default:
			h.logger.Error("POST /accounts - Failed to register account: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /accounts - Account registered: account_id=%s", acc.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromAccount(acc))
}
